package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdClear = "/clear"

	msgWelcome = "Welcome! Tell me what to put on your calendar, or ask what is coming up.\n\n" +
		"Examples:\n" +
		"• Team meeting tomorrow at 2pm for an hour\n" +
		"• What do I have this week?\n" +
		"• Move the team meeting to Friday\n" +
		"• Cancel the dentist appointment"
	msgHelp = "Send a request in plain language. I can create, find, reschedule and cancel events.\n\n" +
		"/clear forgets our recent conversation."
	msgCleared = "Conversation cleared."
	msgBusy    = "Still working on your previous message, please wait a moment."
	msgFailed  = "Something went wrong while handling your request. Please try again."

	maxListedResults = 10
	resultTimeLayout = "Mon Jan 2 15:04"
)
