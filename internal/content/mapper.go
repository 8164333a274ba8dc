package content

import (
	"encoding/json"
	"time"

	"club-content-api/internal/model"
)

// DefaultTimestamp 时间列无法解析时的替代值
var DefaultTimestamp = time.Unix(0, 0).UTC()

// 解码永不失败：未知枚举取默认值，坏时间取 DefaultTimestamp，坏 JSON 子字段只影响该字段

func ParseEventType(s string) model.EventType {
	switch s {
	case "Workshop":
		return model.EventTypeWorkshop
	case "StudyGroup":
		return model.EventTypeStudyGroup
	case "Seminar":
		return model.EventTypeSeminar
	case "Hackathon":
		return model.EventTypeHackathon
	case "Panel":
		return model.EventTypePanel
	case "Networking":
		return model.EventTypeNetworking
	default:
		return model.EventTypeWorkshop
	}
}

// ParseIssueDifficulty issues 表以变体名存储难度
func ParseIssueDifficulty(s string) model.DifficultyLevel {
	switch s {
	case "Easy":
		return model.DifficultyEasy
	case "Medium":
		return model.DifficultyMedium
	case "Hard":
		return model.DifficultyHard
	default:
		return model.DifficultyEasy
	}
}

func ParseProjectStatus(s string) model.ProjectStatus {
	switch s {
	case "Planning":
		return model.ProjectStatusPlanning
	case "Active":
		return model.ProjectStatusActive
	case "InDevelopment":
		return model.ProjectStatusInDevelopment
	case "Beta":
		return model.ProjectStatusBeta
	case "Completed":
		return model.ProjectStatusCompleted
	case "Archived":
		return model.ProjectStatusArchived
	default:
		return model.ProjectStatusPlanning
	}
}

// ParseBlogPostType blog_posts 表以小写下划线存储枚举
func ParseBlogPostType(s string) model.BlogPostType {
	switch s {
	case "tutorial":
		return model.BlogPostTypeTutorial
	case "guide":
		return model.BlogPostTypeGuide
	case "show_and_tell":
		return model.BlogPostTypeShowAndTell
	case "tech_talk":
		return model.BlogPostTypeTechTalk
	case "news":
		return model.BlogPostTypeNews
	case "review":
		return model.BlogPostTypeReview
	default:
		return model.BlogPostTypeTutorial
	}
}

func ParseBlogCategory(s string) model.BlogCategory {
	switch s {
	case "fundamentals":
		return model.BlogCategoryFundamentals
	case "web_development":
		return model.BlogCategoryWebDevelopment
	case "systems_programming":
		return model.BlogCategorySystemsProgramming
	case "game_development":
		return model.BlogCategoryGameDevelopment
	case "cli":
		return model.BlogCategoryCLI
	case "data_science":
		return model.BlogCategoryDataScience
	case "blockchain":
		return model.BlogCategoryBlockchain
	case "performance":
		return model.BlogCategoryPerformance
	case "testing":
		return model.BlogCategoryTesting
	case "deployment":
		return model.BlogCategoryDeployment
	case "career":
		return model.BlogCategoryCareer
	case "community":
		return model.BlogCategoryCommunity
	default:
		return model.BlogCategoryFundamentals
	}
}

func ParseBlogDifficulty(s string) model.DifficultyLevel {
	switch s {
	case "easy":
		return model.DifficultyEasy
	case "medium":
		return model.DifficultyMedium
	case "hard":
		return model.DifficultyHard
	default:
		return model.DifficultyEasy
	}
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DefaultTimestamp
	}
	return t.UTC()
}

// parseStringList 非法编码返回空列表而非 nil，保证序列化为 []
func parseStringList(s string) []string {
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func parseExternalLinks(s string, ok bool) []model.ExternalLink {
	if !ok {
		return []model.ExternalLink{}
	}
	var links []model.ExternalLink
	if err := json.Unmarshal([]byte(s), &links); err != nil || links == nil {
		return []model.ExternalLink{}
	}
	return links
}

func optString(r Row, col string) *string {
	s, ok := r.OptString(col)
	if !ok {
		return nil
	}
	return &s
}

func toUint32(n int64) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}

func MapEvent(r Row) model.Event {
	return model.Event{
		ID:          r.String("uuid"),
		Title:       r.String("title"),
		Description: r.String("description"),
		Date:        r.String("date"),
		Time:        r.String("time"),
		Location:    r.String("location"),
		EventType:   ParseEventType(r.String("event_type")),
		Recurring:   r.Bool("recurring"),
		CreatedAt:   parseTimestamp(r.String("created_at")),
	}
}

func MapIssue(r Row) model.Issue {
	return model.Issue{
		ID:          r.String("uuid"),
		Title:       r.String("title"),
		Description: r.String("description"),
		Repo:        r.String("repo"),
		GithubURL:   r.String("github_url"),
		Difficulty:  ParseIssueDifficulty(r.String("difficulty")),
		Tags:        parseStringList(r.String("tags")),
		CreatedAt:   parseTimestamp(r.String("created_at")),
	}
}

// MapProject 行来自 projects JOIN members，leader_* 为成员表的列
func MapProject(r Row) model.Project {
	return model.Project{
		ID:          r.String("uuid"),
		Name:        r.String("name"),
		Description: r.String("description"),
		GithubURL:   r.String("github_url"),
		Leader: model.Member{
			Name:           r.String("leader_name"),
			GithubUsername: optString(r, "leader_github"),
		},
		Contributors:       []model.Member{},
		Status:             ParseProjectStatus(r.String("status")),
		TechStack:          parseStringList(r.String("tech_stack")),
		ContributorsNeeded: r.Bool("contributors_needed"),
		SkillsNeeded:       parseStringList(r.String("skills_needed")),
		CreatedAt:          parseTimestamp(r.String("created_at")),
	}
}

func MapBlogPost(r Row) model.BlogPost {
	var difficulty *model.DifficultyLevel
	if s, ok := r.OptString("difficulty_level"); ok {
		d := ParseBlogDifficulty(s)
		difficulty = &d
	}
	links, ok := r.OptString("external_links")
	return model.BlogPost{
		ID:                r.String("id"),
		Title:             r.String("title"),
		Slug:              r.String("slug"),
		Excerpt:           r.String("excerpt"),
		PostType:          ParseBlogPostType(r.String("post_type")),
		Category:          ParseBlogCategory(r.String("category")),
		Tags:              parseStringList(r.String("tags")),
		AuthorName:        r.String("author_name"),
		AuthorGithub:      optString(r, "author_github"),
		DifficultyLevel:   difficulty,
		EstimatedReadTime: toUint32(r.Int("estimated_read_time")),
		PublishedAt:       r.String("published_at"),
		UpdatedAt:         optString(r, "updated_at"),
		Views:             toUint32(r.Int("views")),
		Likes:             toUint32(r.Int("likes")),
		MarkdownURL:       r.String("markdown_url"),
		Series:            mapSeries(r),
		ExternalLinks:     parseExternalLinks(links, ok),
	}
}

// mapSeries 优先使用 series_title/series_part/series_total_parts 列，否则尝试 JSON 列 series
func mapSeries(r Row) *model.BlogSeries {
	if title, ok := r.OptString("series_title"); ok {
		s := &model.BlogSeries{Title: title, Part: 1}
		if part, ok := r.OptInt("series_part"); ok {
			s.Part = toUint32(part)
		}
		if total, ok := r.OptInt("series_total_parts"); ok {
			t := toUint32(total)
			s.TotalParts = &t
		}
		return s
	}
	raw, ok := r.OptString("series")
	if !ok {
		return nil
	}
	var s model.BlogSeries
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Title == "" {
		return nil
	}
	return &s
}

// MapRows 按行顺序解码
func MapRows[T any](rows []Row, decode func(Row) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, decode(r))
	}
	return out
}
