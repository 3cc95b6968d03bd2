package models

// Role constants, coarse permission levels reported by the backend
const (
	RoleUser      = "user"
	RoleSergeant  = "sergeant"
	RoleAssistant = "assistant"
	RoleAdmin     = "admin"
)

// Gender values recorded at registration
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Survey stage identifiers, in submission order
const (
	StageMain    = "main"
	StageCanteen = "canteen"
	StageFemale  = "female"
)

// Pairwise choice values
const (
	ChoiceA     = "a"
	ChoiceB     = "b"
	ChoiceEqual = "equal"
)

// Per-pair vote delivery status tracked during a stage submission
const (
	VotePending = "pending"
	VoteSent    = "sent"
	VoteFailed  = "failed"
)

// Domain types

type Profile struct {
	FullName    string `json:"full_name"`
	Group       string `json:"group"`
	Course      int    `json:"course"`
	CourseLabel string `json:"course_label"`
	Role        string `json:"role"`
	Gender      string `json:"gender"`
	Points      int    `json:"points"`
	TotalDuties int    `json:"total_duties"`
	Registered  bool   `json:"registered"`
}

type Duty struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Role     string `json:"role"`
	RoleFull string `json:"role_full"`
	Group    string `json:"group_name,omitempty"`
}

// BrigadeMember is one person in a day's duty brigade.
type BrigadeMember struct {
	FIO   string `json:"fio"`
	Group string `json:"group,omitempty"`
}

type Task struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Deadline string `json:"deadline,omitempty"` // YYYY-MM-DD HH:MM:SS, empty when unset
}

// Pair is one pairwise-comparison question: which of two duty objects
// is harder.
type Pair struct {
	ObjectAID   int    `json:"object_a_id"`
	ObjectAName string `json:"object_a_name"`
	ObjectBID   int    `json:"object_b_id"`
	ObjectBName string `json:"object_b_name"`
}

// SurveyInfo is one entry of the survey catalog.
type SurveyInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ForGender string `json:"for_gender,omitempty"`
	Voted     bool   `json:"voted"`
}

// CustomSurvey is a group-scoped single-question survey.
type CustomSurvey struct {
	ID      int            `json:"id"`
	Title   string         `json:"title"`
	Options []CustomOption `json:"options"`
}

type CustomOption struct {
	ID   int    `json:"id"`
	Text string `json:"option_text"`
}

// SurveyResult is one aggregated row of the user-results view.
type SurveyResult struct {
	ObjectName string  `json:"object_name"`
	Weight     float64 `json:"weight"`
	Votes      int     `json:"votes"`
}

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type RatingEntry struct {
	Rank   int    `json:"rank"`
	FIO    string `json:"fio"`
	Group  string `json:"group_name,omitempty"`
	Points int    `json:"points"`
}

type Lesson struct {
	Subject string `json:"subject"`
	Type    string `json:"type,omitempty"`
	Room    string `json:"room,omitempty"`
	Teacher string `json:"teacher,omitempty"`
}

type AdminUser struct {
	TelegramID int64  `json:"telegram_id"`
	FIO        string `json:"fio"`
	Group      string `json:"group_name,omitempty"`
	Role       string `json:"role"`
}

// Request types

type UpdateUserRequest struct {
	TelegramID int64  `json:"telegram_id"`
	FIO        string `json:"fio,omitempty"`
	Group      string `json:"group,omitempty"`
}

type AddTaskRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

type EditTaskRequest struct {
	TaskID int    `json:"task_id"`
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

type DoneTaskRequest struct {
	TaskID int   `json:"task_id"`
	UserID int64 `json:"user_id"`
	Done   bool  `json:"done"`
}

type DeleteTaskRequest struct {
	TaskID int   `json:"task_id"`
	UserID int64 `json:"user_id"`
}

type SetReminderRequest struct {
	TaskID   int    `json:"task_id"`
	UserID   int64  `json:"user_id"`
	Deadline string `json:"deadline"` // YYYY-MM-DD HH:MM:SS
}

type PairVoteRequest struct {
	UserID    int64  `json:"user_id"`
	ObjectAID int    `json:"object_a_id"`
	ObjectBID int    `json:"object_b_id"`
	Choice    string `json:"choice"`
	Stage     string `json:"stage"`
}

type CustomVoteRequest struct {
	TelegramID int64 `json:"telegram_id"`
	OptionID   int   `json:"option_id"`
}

type SetRoleRequest struct {
	ActorTelegramID  int64  `json:"actor_telegram_id"`
	TargetTelegramID int64  `json:"target_telegram_id"`
	Role             string `json:"role"`
}

// Response types

type UserResponse struct {
	FullName    string `json:"full_name"`
	Course      int    `json:"course"`
	CourseLabel string `json:"course_label"`
	Group       string `json:"group"`
	Role        string `json:"role"`
	Gender      string `json:"gender"`
	Registered  bool   `json:"registered"`
	Error       string `json:"error,omitempty"`
}

type DutiesResponse struct {
	NextDuty *Duty  `json:"next_duty,omitempty"`
	Duties   []Duty `json:"duties"`
	Total    int    `json:"total"`
	Error    string `json:"error,omitempty"`
}

type DutyDayResponse struct {
	ByRole map[string][]BrigadeMember `json:"by_role"`
	Total  int                        `json:"total"`
	Error  string                     `json:"error,omitempty"`
}

type AvailableMonthsResponse struct {
	Months []string `json:"months"` // YYYY-MM, newest first
	Error  string   `json:"error,omitempty"`
}

type SurveyListResponse struct {
	System     []SurveyInfo   `json:"system"`
	Custom     []CustomSurvey `json:"custom"`
	UserGender string         `json:"user_gender"`
	Error      string         `json:"error,omitempty"`
}

type PairsResponse struct {
	Pairs        []Pair `json:"pairs"`
	AlreadyVoted bool   `json:"already_voted"`
	Error        string `json:"error,omitempty"`
}

type SurveyResultsResponse struct {
	Results []SurveyResult `json:"results"`
	Error   string         `json:"error,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type UsersResponse struct {
	Users []AdminUser `json:"users"`
	Error string      `json:"error,omitempty"`
}

type UploadResponse struct {
	Message string `json:"message,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ScheduleDayResponse struct {
	Lessons []Lesson `json:"lessons"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type ScheduleWeekResponse struct {
	// Schedule maps YYYY-MM-DD to that day's lessons.
	Schedule map[string][]Lesson `json:"schedule"`
	Message  string              `json:"message,omitempty"`
	Error    string              `json:"error,omitempty"`
}

type NotificationsResponse struct {
	Items []Notification `json:"items"`
	Error string         `json:"error,omitempty"`
}

type RatingMeResponse struct {
	Points int    `json:"points"`
	Rank   int    `json:"rank,omitempty"`
	Error  string `json:"error,omitempty"`
}

type RatingTopResponse struct {
	Top   []RatingEntry `json:"top"`
	Error string        `json:"error,omitempty"`
}

// ErrorResponse is the backend's body-level error envelope. The backend
// reports failures both as non-2xx statuses and as a 200 body with a
// non-empty error field; callers must check both.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
