package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a task calendar assistant. Analyze the user's input and determine the intent and extract relevant parameters.

Possible intents:
1. CREATE_TASK - User wants to create a new task/event
2. QUERY_TASKS - User wants to search for existing tasks
3. UPDATE_TASK - User wants to modify an existing task
4. DELETE_TASK - User wants to remove a task
5. UNKNOWN - Intent is unclear

For CREATE_TASK, extract:
- title: The task title
- date: Date in YYYY-MM-DD format (default to today if not specified)
- time: Time in HH:MM format (24-hour)
- duration: Duration in minutes (integer)
- description: Any additional details

For QUERY_TASKS, extract:
- query: Search terms
- dateRange: "today", "tomorrow", "this_week", "next_week", or a specific date in YYYY-MM-DD format
- timeRange: "morning", "afternoon", or "evening", only if mentioned

For UPDATE_TASK, extract:
- target: Title of the existing task to change
- title, date, time, duration, description: Only the fields that change, same formats as CREATE_TASK

For DELETE_TASK, extract:
- target: Title of the task to remove
- date: Date of the task in YYYY-MM-DD format, if mentioned

For UNKNOWN, parameters is an empty object.

Respond with JSON only:
{
  "intent": "CREATE_TASK|QUERY_TASKS|UPDATE_TASK|DELETE_TASK|UNKNOWN",
  "confidence": 0.0-1.0,
  "parameters": {},
  "response": "Natural language response to the user"
}`

	// PromptTimeContext is appended to the system prompt: date, weekday, timezone.
	PromptTimeContext = "\n\nToday is %s (%s). Timezone: %s. Resolve relative dates against today."
)

// Router configuration
const (
	RouterTemperature  = 0.1
	FallbackConfidence = 0.5
)

// User-facing responses
const (
	ResponseFallbackCreate = "I'll help you create a task. Please provide more details if needed."
	ResponseFallbackQuery  = "Let me search for your tasks."
	ResponseFallbackHelp   = "I'm not sure what you want to do. Try saying something like 'Create a meeting tomorrow at 2pm' or 'Show me my tasks for today'."
	ResponseRephrase       = "I'm not sure what you want to do. Could you please rephrase your request?"
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, using keyword fallback"
	ErrMsgEmptyResponse   = "Empty LLM response, using keyword fallback"
	ErrMsgJSONParseFailed = "Failed to parse classification"
)

var (
	createKeywords = []string{"create", "add", "schedule"}
	queryKeywords  = []string{"find", "show", "search", "list", "what", "when", "do i have"}
)
