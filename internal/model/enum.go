package model

// 枚举值序列化为变体名，展示文案通过 Label 获取

type EventType string

const (
	EventTypeWorkshop   EventType = "Workshop"
	EventTypeStudyGroup EventType = "StudyGroup"
	EventTypeSeminar    EventType = "Seminar"
	EventTypeHackathon  EventType = "Hackathon"
	EventTypePanel      EventType = "Panel"
	EventTypeNetworking EventType = "Networking"
)

func (t EventType) Label() string {
	if t == EventTypeStudyGroup {
		return "Study Group"
	}
	return string(t)
}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "Easy"
	DifficultyMedium DifficultyLevel = "Medium"
	DifficultyHard   DifficultyLevel = "Hard"
)

func (d DifficultyLevel) Label() string {
	return string(d)
}

type ProjectStatus string

const (
	ProjectStatusPlanning      ProjectStatus = "Planning"
	ProjectStatusActive        ProjectStatus = "Active"
	ProjectStatusInDevelopment ProjectStatus = "InDevelopment"
	ProjectStatusBeta          ProjectStatus = "Beta"
	ProjectStatusCompleted     ProjectStatus = "Completed"
	ProjectStatusArchived      ProjectStatus = "Archived"
)

func (s ProjectStatus) Label() string {
	if s == ProjectStatusInDevelopment {
		return "In Development"
	}
	return string(s)
}

type BlogPostType string

const (
	BlogPostTypeTutorial    BlogPostType = "Tutorial"
	BlogPostTypeGuide       BlogPostType = "Guide"
	BlogPostTypeShowAndTell BlogPostType = "ShowAndTell"
	BlogPostTypeTechTalk    BlogPostType = "TechTalk"
	BlogPostTypeNews        BlogPostType = "News"
	BlogPostTypeReview      BlogPostType = "Review"
)

func (t BlogPostType) Label() string {
	switch t {
	case BlogPostTypeShowAndTell:
		return "Show & Tell"
	case BlogPostTypeTechTalk:
		return "Tech Talk"
	default:
		return string(t)
	}
}

type BlogCategory string

const (
	BlogCategoryFundamentals       BlogCategory = "Fundamentals"
	BlogCategoryWebDevelopment     BlogCategory = "WebDevelopment"
	BlogCategorySystemsProgramming BlogCategory = "SystemsProgramming"
	BlogCategoryGameDevelopment    BlogCategory = "GameDevelopment"
	BlogCategoryCLI                BlogCategory = "CLI"
	BlogCategoryDataScience        BlogCategory = "DataScience"
	BlogCategoryBlockchain         BlogCategory = "Blockchain"
	BlogCategoryPerformance        BlogCategory = "Performance"
	BlogCategoryTesting            BlogCategory = "Testing"
	BlogCategoryDeployment         BlogCategory = "Deployment"
	BlogCategoryCareer             BlogCategory = "Career"
	BlogCategoryCommunity          BlogCategory = "Community"
)

func (c BlogCategory) Label() string {
	switch c {
	case BlogCategoryWebDevelopment:
		return "Web Development"
	case BlogCategorySystemsProgramming:
		return "Systems Programming"
	case BlogCategoryGameDevelopment:
		return "Game Development"
	case BlogCategoryDataScience:
		return "Data Science"
	default:
		return string(c)
	}
}
