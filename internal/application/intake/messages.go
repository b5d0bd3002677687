package intake

import (
	"fmt"
	"strings"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
)

const (
	msgRegisterPrompt = "Welcome! Your number is not registered yet.\n" +
		"Please reply with your details in this format:\nName, Property, Unit\n" +
		"Example: Jane Wanjiku, Riverside Court, A4"
	msgRegisterFormat   = "Sorry, we could not read that. Please reply as:\nName, Property, Unit"
	msgUnknownProperty  = "We could not find a property called %q. Please check the name and try again:\nName, Property, Unit"
	msgRegistered       = "Thank you %s, you are now registered."
	msgInvalidCategory  = "Please reply with the number of one of the options."
	msgDescribe         = "Please describe the %s issue in one message. You can also send photos."
	msgTicketCreated    = "Thank you. Your ticket %s has been logged and our team will be in touch."
	msgSelectionExpired = "Your category selection has expired. Send any message to start again."
	msgMediaAttached    = "Photo added to ticket %s."
	msgMediaLimit       = "You can attach up to 5 photos per ticket."
	msgTryAgain         = "Sorry, something went wrong. Please try again in a few minutes."
)

func categoryMenu() string {
	var b strings.Builder
	b.WriteString("What do you need help with? Reply with a number:\n")
	for i, c := range vo.AllCategories() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return strings.TrimRight(b.String(), "\n")
}
