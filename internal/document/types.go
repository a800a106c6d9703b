package document

import "time"

// CurrentVersion is the schema version written by Save. Payloads without a
// version field are version 0.
const CurrentVersion = 1

// MaxLogEntries bounds Document.Logs. Oldest entries are evicted first.
const MaxLogEntries = 100

// DateLayout is the calendar-day format used for completion sets and due dates.
const DateLayout = "2006-01-02"

type Category string

const (
	CategoryPhysical     Category = "Physical"
	CategoryIntelligence Category = "Intelligence"
	CategorySkills       Category = "Skills"
	CategoryDiscipline   Category = "Discipline"
	CategoryWealth       Category = "Wealth"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPhysical, CategoryIntelligence, CategorySkills, CategoryDiscipline, CategoryWealth:
		return true
	default:
		return false
	}
}

type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type LogKind string

const (
	LogXP          LogKind = "xp"
	LogIncome      LogKind = "income"
	LogMeasurement LogKind = "measurement"
)

// Document is the single persisted aggregate holding all application state.
type Document struct {
	Version    int        `json:"version"`
	User       User       `json:"user"`
	Stats      Stats      `json:"stats"`
	Habits     []Habit    `json:"habits"`
	Projects   []Project  `json:"projects"`
	Logs       []LogEntry `json:"logs"`
	Exams      []Exam     `json:"exams"`
	Subjects   []Subject  `json:"subjects"`
	Chapters   []Chapter  `json:"chapters"`
	Topics     []Topic    `json:"topics"`
	Skills     []Skill    `json:"skills"`
	Discipline Discipline `json:"discipline"`
	Physical   Physical   `json:"physical"`
	Settings   Settings   `json:"settings"`
}

type User struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Avatar   string `json:"avatar"`
	JoinedAt string `json:"joinedAt"`
}

// Stats.Level is persisted for compatibility only; it is recomputed from XP
// on every load and save.
type Stats struct {
	XP     int `json:"xp"`
	Level  int `json:"level"`
	Streak int `json:"streak"`
}

type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Frequency      string   `json:"frequency"`
	CompletedDates []string `json:"completedDates"`
	XPValue        int      `json:"xpValue"`
}

type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	IsMonetized bool          `json:"isMonetized"`
	Income      float64       `json:"income"`
	DueDate     string        `json:"dueDate"`
	Priority    Priority      `json:"priority"`
}

type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      LogKind   `json:"type"`
	Value     float64   `json:"value"`
	Label     string    `json:"label"`
}

type Exam struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Date           string   `json:"date"`
	StudyMaterials []string `json:"studyMaterials"`
}

type Subject struct {
	ID     string `json:"id"`
	ExamID string `json:"examId"`
	Name   string `json:"name"`
}

type Chapter struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Topic.ChapterID is not checked against Document.Chapters.
type Topic struct {
	ID        string `json:"id"`
	ChapterID string `json:"chapterId"`
	Name      string `json:"name"`
	Done      bool   `json:"done"`
}

type Skill struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Level    int     `json:"level"`
	Hours    float64 `json:"hours"`
}

type Discipline struct {
	NoJunkStreak     int    `json:"noJunkStreak"`
	WakeUpStreak     int    `json:"wakeUpStreak"`
	ScreenFreeStreak int    `json:"screenFreeStreak"`
	LastCheckIn      string `json:"lastCheckIn"`
}

type Physical struct {
	Weight       float64      `json:"weight"`
	Height       float64      `json:"height"`
	PBs          PBs          `json:"pbs"`
	Measurements Measurements `json:"measurements"`
}

type PBs struct {
	BenchPress float64 `json:"benchPress"`
	Squat      float64 `json:"squat"`
	Deadlift   float64 `json:"deadlift"`
	PullUps    int     `json:"pullUps"`
}

type Measurements struct {
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Arms   float64 `json:"arms"`
	Thighs float64 `json:"thighs"`
}

type Settings struct {
	Theme          string         `json:"theme"`
	Notifications  bool           `json:"notifications"`
	DailyXPGoal    int            `json:"dailyXpGoal"`
	ActiveSections ActiveSections `json:"activeSections"`
}

type ActiveSections struct {
	Habits     bool `json:"habits"`
	Exams      bool `json:"exams"`
	Projects   bool `json:"projects"`
	Skills     bool `json:"skills"`
	Physical   bool `json:"physical"`
	Discipline bool `json:"discipline"`
}
