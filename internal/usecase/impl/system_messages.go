package impl

import (
	"fmt"
)

// System chat message bodies emitted by the lifecycle. Rendered once
// here so the dispatcher delivers them verbatim.

func quotationMessageText(finalPrice int64, bakerNote string) string {
	text := fmt.Sprintf("The baker has quoted ₱%d for your design.", finalPrice)
	if bakerNote != "" {
		text += " Note: " + bakerNote
	}

	return text
}

func discussionOpenerText() string {
	return "The baker has picked up your design request and opened the discussion."
}

func approvalMessageText() string {
	return "The customer approved the quote."
}

func declineMessageText() string {
	return "The customer declined the quote."
}
