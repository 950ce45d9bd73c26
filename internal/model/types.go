package model

// Role represents an application role
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleDealer Role = "Dealer"
	RoleGuest  Role = "Guest"
)

// DealerCategory represents a dealer tier
type DealerCategory string

const (
	CategoryS DealerCategory = "S"
	CategoryA DealerCategory = "A"
	CategoryB DealerCategory = "B"
)

// SubmissionStatus represents the lifecycle state of a form submission
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "Pending"
	StatusCompleted SubmissionStatus = "Completed"
	StatusArchived  SubmissionStatus = "Archived"
)

// ActivityType represents a marketing-activity kind tracked by goals
type ActivityType string

const (
	ActivityPhysicalEvent  ActivityType = "Evento Fisico"
	ActivityOnlineCampaign ActivityType = "Campagna Online"
	ActivityPR             ActivityType = "PR"
	ActivityTradeFair      ActivityType = "Fiera"
)

// FieldType represents the input type of a form field
type FieldType string

const (
	FieldText     FieldType = "TEXT"
	FieldTextarea FieldType = "TEXTAREA"
	FieldNumber   FieldType = "NUMBER"
	FieldDate     FieldType = "DATE"
	FieldSelect   FieldType = "SELECT"
)

// Contact represents a dealer contact person
type Contact struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	Email string   `json:"email"`
	Phone string   `json:"phone,omitempty"`
}

// Dealer represents a regional dealer
type Dealer struct {
	ID        string         `json:"id"`
	SapID     *string        `json:"sapId,omitempty"`
	Name      string         `json:"name"`
	Category  DealerCategory `json:"category"`
	Website   string         `json:"website,omitempty"`
	Contacts  []Contact      `json:"contacts"`
	CreatedAt string         `json:"createdAt,omitempty"`
}

// FieldOption represents one choice of a SELECT field. GoalCategory, when
// set, tags submissions choosing this option with a marketing-goal bucket.
type FieldOption struct {
	Value        string       `json:"value"`
	Label        string       `json:"label"`
	GoalCategory ActivityType `json:"goalCategory,omitempty"`
}

// FieldCondition gates field visibility on another field's current value.
// All conditions of a field must hold for the field to be visible.
type FieldCondition struct {
	FieldID string      `json:"fieldId"`
	Value   interface{} `json:"value"`
}

// FormField represents one field of a form template
type FormField struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Type        FieldType        `json:"type"`
	Required    bool             `json:"required"`
	Options     []FieldOption    `json:"options,omitempty"`     // SELECT only
	IsGoalLink  bool             `json:"isGoalLink,omitempty"`  // SELECT only
	IsEventDate bool             `json:"isEventDate,omitempty"` // DATE only
	Conditions  []FieldCondition `json:"conditions,omitempty"`
}

// FormTemplate represents a dynamically defined data-collection form.
// Field order is significant: it is the display order, and the first
// non-empty value doubles as a submission's display title.
type FormTemplate struct {
	ID                       string      `json:"id"`
	Title                    string      `json:"title"`
	Description              string      `json:"description,omitempty"`
	Fields                   []FormField `json:"fields"`
	Published                bool        `json:"published"`
	Archived                 bool        `json:"archived"`
	DealerCanEditSubmissions bool        `json:"dealerCanEditSubmissions"`
	CreatedAt                string      `json:"createdAt,omitempty"`
}

// FieldValues maps field id to the raw entered value
type FieldValues map[string]interface{}

// Submission represents a filled form. GoalValue and EventDate are derived
// from Data on every create/update, never authored directly.
type Submission struct {
	ID             string           `json:"id"`
	TemplateID     string           `json:"templateId"`
	DealerID       string           `json:"dealerId"`
	DealerName     string           `json:"dealerName,omitempty"`
	SubmissionDate string           `json:"submissionDate"`
	Status         SubmissionStatus `json:"status"`
	Data           FieldValues      `json:"data"`
	GoalValue      ActivityType     `json:"goalValue,omitempty"`
	EventDate      string           `json:"eventDate,omitempty"`
}

// Goal represents a marketing-activity target for a date window. It applies
// to every dealer of the matching category and is evaluated per dealer.
type Goal struct {
	ID           string         `json:"id"`
	Category     DealerCategory `json:"category"`
	ActivityType ActivityType   `json:"activityType"`
	Count        int            `json:"count"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Note         string         `json:"note,omitempty"`
}

// NoticeType represents the kind of a notice
type NoticeType string

const (
	NoticeGeneral       NoticeType = "GENERAL"
	NoticeWebinar       NoticeType = "WEBINAR"
	NoticeInPersonEvent NoticeType = "IN_PERSON_EVENT"
)

// NoticePriority represents notice priority
type NoticePriority string

const (
	PriorityHigh   NoticePriority = "High"
	PriorityMedium NoticePriority = "Medium"
	PriorityLow    NoticePriority = "Low"
)

// Attendee represents a registered event attendee
type Attendee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email"`
}

// Participation represents one dealer's RSVP to an event notice
type Participation struct {
	DealerID  string     `json:"dealerId"`
	Attendees []Attendee `json:"attendees"`
}

// Notice represents a published notice or event announcement
type Notice struct {
	ID             string          `json:"id"`
	Type           NoticeType      `json:"type"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	EventDate      *string         `json:"eventDate,omitempty"`
	EventTime      *string         `json:"eventTime,omitempty"`
	Priority       NoticePriority  `json:"priority"`
	CreationDate   string          `json:"creationDate"`
	Participations []Participation `json:"participations"`
}

// WidgetType represents a dashboard widget kind
type WidgetType string

const (
	WidgetStatCard          WidgetType = "STAT_CARD"
	WidgetChart             WidgetType = "CHART"
	WidgetGoals             WidgetType = "GOALS"
	WidgetRecentSubmissions WidgetType = "RECENT_SUBMISSIONS"
)

// ChartType represents how a chart widget is rendered
type ChartType string

const (
	ChartBar  ChartType = "BAR"
	ChartLine ChartType = "LINE"
	ChartPie  ChartType = "PIE"
)

// AggregationType represents how grouped submissions are reduced
type AggregationType string

const (
	AggregateCount AggregationType = "COUNT"
	AggregateSum   AggregationType = "SUM"
)

// WidgetConfig holds widget options. Which fields are required depends on
// the widget type.
type WidgetConfig struct {
	Title           string          `json:"title"`
	TemplateID      string          `json:"formTemplateId,omitempty"`
	GroupByFieldID  string          `json:"groupByFieldId,omitempty"`
	AggregationType AggregationType `json:"aggregationType,omitempty"`
	SumOfFieldID    string          `json:"sumOfFieldId,omitempty"`
	ChartType       ChartType       `json:"chartType,omitempty"`
	Limit           int             `json:"limit,omitempty"` // recent submissions
}

// Widget represents one widget of a role's dashboard
type Widget struct {
	ID     string       `json:"id"`
	Role   Role         `json:"role,omitempty"`
	Type   WidgetType   `json:"type"`
	Config WidgetConfig `json:"config"`
}

// Layout represents a widget's grid position, keyed 1:1 by widget id
type Layout struct {
	I      string `json:"i"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Static bool   `json:"static,omitempty"`
}

// Product represents a sellable product used by sales forecasts
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ForecastStatus represents a forecast's lifecycle state
type ForecastStatus string

const (
	ForecastOpen   ForecastStatus = "Open"
	ForecastClosed ForecastStatus = "Closed"
)

// SalesForecast represents a per-dealer quarterly unit forecast
type SalesForecast struct {
	ID              string         `json:"id"`
	DealerID        string         `json:"dealerId"`
	DealerName      string         `json:"dealerName,omitempty"`
	ProductID       string         `json:"productId"`
	ProductName     string         `json:"productName,omitempty"`
	Year            int            `json:"year"`
	Quarter         int            `json:"quarter"`
	ForecastedUnits int            `json:"forecastedUnits"`
	ActualUnits     int            `json:"actualUnits"`
	Status          ForecastStatus `json:"status"`
}

// User represents an application account
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	DealerID     *string `json:"dealerId,omitempty"`
	PasswordHash string  `json:"-"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}
