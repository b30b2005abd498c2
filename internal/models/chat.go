package models

// ChatRequest is the payload sent to the relay's chat endpoint.
type ChatRequest struct {
	InputValue string `json:"input_value"`
}

// ChatReply is the assistant text returned by the relay.
type ChatReply struct {
	Message string `json:"message"`
}

// ChatError is the failure body of the chat endpoint. Error holds either a
// plain string or the upstream error payload as raw JSON.
type ChatError struct {
	Error interface{} `json:"error"`
}

// LangflowRunRequest is the body posted to a Langflow run endpoint.
type LangflowRunRequest struct {
	InputValue string                 `json:"input_value"`
	InputType  string                 `json:"input_type"`
	OutputType string                 `json:"output_type"`
	Tweaks     map[string]interface{} `json:"tweaks"`
}

// NewLangflowChatRun builds a chat-in/chat-out run with no tweaks.
func NewLangflowChatRun(input string) LangflowRunRequest {
	return LangflowRunRequest{
		InputValue: input,
		InputType:  "chat",
		OutputType: "chat",
		Tweaks:     map[string]interface{}{},
	}
}
