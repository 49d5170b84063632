package htmx

// Response headers the server sets to steer the client.
const (
	HeaderHXLocation           = "HX-Location"
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReselect           = "HX-Reselect"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXTrigger            = "HX-Trigger"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
)

// Request headers HTMX sends with every request it issues.
const (
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXPrompt                = "HX-Prompt"
	HeaderHXRequest               = "HX-Request"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)
