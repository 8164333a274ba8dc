package content

import (
	"time"

	"club-content-api/internal/model"
)

// Kind 资源类型
type Kind string

const (
	KindEvents    Kind = "events"
	KindIssues    Kind = "issues"
	KindProjects  Kind = "projects"
	KindBlogPosts Kind = "blog_posts"
)

// fallbackEnabled 空结果时是否使用示例数据。博客初始即为空，不使用示例数据
var fallbackEnabled = map[Kind]bool{
	KindEvents:    true,
	KindIssues:    true,
	KindProjects:  true,
	KindBlogPosts: false,
}

func FallbackEnabled(kind Kind) bool {
	return fallbackEnabled[kind]
}

func strPtr(s string) *string {
	return &s
}

// FallbackEvents 数据库尚无活动时展示的示例活动
func FallbackEvents() []model.Event {
	now := time.Now().UTC()
	return []model.Event{
		{
			ID:          "550e8400-e29b-41d4-a716-446655440001",
			Title:       "Spring 2025 Workshop #1: Rust Fundamentals",
			Description: "Learn Rust fundamentals including ownership, borrowing, and building your first CLI tool. Perfect for beginners!",
			Date:        "February 15",
			Time:        "1:00 PM - 5:00 PM",
			Location:    "Engineering Building, Room 301",
			EventType:   model.EventTypeWorkshop,
			Recurring:   false,
			CreatedAt:   now,
		},
		{
			ID:          "550e8400-e29b-41d4-a716-446655440002",
			Title:       "Weekly Study Group",
			Description: "Join us for collaborative learning and project work. Bring your Rust questions!",
			Date:        "Every Friday",
			Time:        "3:00 PM - 5:00 PM",
			Location:    "Library, Study Room B",
			EventType:   model.EventTypeStudyGroup,
			Recurring:   true,
			CreatedAt:   now,
		},
		{
			ID:          "550e8400-e29b-41d4-a716-446655440003",
			Title:       "Industry Guest Speaker: WebAssembly in Production",
			Description: "Learn how major companies are using Rust and WebAssembly in production environments.",
			Date:        "March 8",
			Time:        "6:00 PM - 8:00 PM",
			Location:    "Auditorium A, Student Center",
			EventType:   model.EventTypeSeminar,
			Recurring:   false,
			CreatedAt:   now,
		},
	}
}

func FallbackIssues() []model.Issue {
	now := time.Now().UTC()
	return []model.Issue{
		{
			ID:          "550e8400-e29b-41d4-a716-446655440010",
			Title:       "Add documentation for async patterns",
			Description: "We need comprehensive documentation covering async/await patterns in Rust. This would help newcomers understand concurrent programming.",
			Repo:        "rust-lang/reference",
			GithubURL:   "https://github.com/rust-lang/reference/issues/123",
			Difficulty:  model.DifficultyEasy,
			Tags:        []string{"documentation", "async", "good-first-issue"},
			CreatedAt:   now,
		},
		{
			ID:          "550e8400-e29b-41d4-a716-446655440011",
			Title:       "Improve error message for trait bound errors",
			Description: "Current error messages for complex trait bounds can be confusing. We need clearer, more actionable error messages.",
			Repo:        "rust-lang/rust",
			GithubURL:   "https://github.com/rust-lang/rust/issues/456",
			Difficulty:  model.DifficultyMedium,
			Tags:        []string{"diagnostics", "error-messages", "good-first-issue"},
			CreatedAt:   now,
		},
	}
}

func FallbackProjects() []model.Project {
	now := time.Now().UTC()
	return []model.Project{
		{
			ID:          "550e8400-e29b-41d4-a716-446655440020",
			Name:        "The Rust Club Website",
			Description: "Official website for The Rust Club built with Leptos and deployed on Cloudflare Pages.",
			GithubURL:   "https://github.com/rust-club/website",
			Leader:      model.Member{Name: "Alex Chen", GithubUsername: strPtr("alexcodes")},
			Contributors: []model.Member{
				{Name: "Jordan Smith", GithubUsername: strPtr("jordandev")},
				{Name: "Sam Wilson", GithubUsername: strPtr("samw")},
			},
			Status:             model.ProjectStatusActive,
			TechStack:          []string{"Leptos", "Trunk", "CSS", "Cloudflare"},
			ContributorsNeeded: true,
			SkillsNeeded:       []string{"Frontend", "CSS", "Design"},
			CreatedAt:          now,
		},
		{
			ID:          "550e8400-e29b-41d4-a716-446655440021",
			Name:        "RustBot Discord Bot",
			Description: "A Discord bot for The Rust Club server with moderation, event management, and learning resources.",
			GithubURL:   "https://github.com/rust-club/rustbot",
			Leader:      model.Member{Name: "Taylor Rodriguez", GithubUsername: strPtr("taylorr")},
			Contributors: []model.Member{
				{Name: "Casey Johnson", GithubUsername: strPtr("caseyjay")},
			},
			Status:             model.ProjectStatusInDevelopment,
			TechStack:          []string{"Rust", "Serenity", "SQLite"},
			ContributorsNeeded: true,
			SkillsNeeded:       []string{"Backend", "Discord API", "Database"},
			CreatedAt:          now,
		},
	}
}
