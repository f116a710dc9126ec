package usecase

const (
	defaultTitle              = "New Task"
	defaultDescriptionPattern = "Created via natural language: \"%s\""

	msgCreated       = "Successfully created \"%s\" for %s at %s."
	msgCreateFailed  = "Sorry, I couldn't create the task. Please try again with more specific details."
	msgQueryDefault  = "Here are the tasks matching your query."
	msgUnknown       = "I'm not sure what you want to do. Try asking me to create a task or search for existing ones."
	msgProcessFailed = "Sorry, I encountered an error processing your request. Please try again."

	msgTargetMissing  = "Which task should I %s?"
	msgTargetNotFound = "I couldn't find a task matching \"%s\"."
	msgTargetAmbig    = "I found several tasks matching \"%s\": %s. Please be more specific."
	msgForbidden      = "You are not allowed to change \"%s\"."
	msgUpdated        = "Successfully updated \"%s\"."
	msgDeleted        = "Successfully deleted \"%s\"."

	createdDateLayout = "Jan 2, 2006"
	createdTimeLayout = "3:04 PM"

	maxListedTargets = 3
)
