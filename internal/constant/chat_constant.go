package constant

const (
	// DefaultSystemPrompt applies when a session's category no longer exists.
	DefaultSystemPrompt = "You are a helpful assistant."

	MetadataRedirectToOtherCategory = "redirectToOtherCategory"
)
