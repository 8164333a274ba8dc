package model

// 以下为持久化表结构，仅用于开发环境 AutoMigrate。
// 表名与列名是对外约定，内容由外部流程维护；时间以 RFC3339 文本存储，JSON 列以文本存储。

type EventTable struct {
	UUID        string `gorm:"column:uuid;type:varchar(36);primaryKey"`
	Title       string `gorm:"column:title;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:text"`
	Date        string `gorm:"column:date;type:varchar(100)"`
	Time        string `gorm:"column:time;type:varchar(100)"`
	Location    string `gorm:"column:location;type:varchar(255)"`
	EventType   string `gorm:"column:event_type;type:varchar(32);not null"`
	Recurring   int    `gorm:"column:recurring;not null;default:0"`
	CreatedAt   string `gorm:"column:created_at;type:varchar(40);index"`
}

func (EventTable) TableName() string {
	return "events"
}

type IssueTable struct {
	UUID        string `gorm:"column:uuid;type:varchar(36);primaryKey"`
	Title       string `gorm:"column:title;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:text"`
	Repo        string `gorm:"column:repo;type:varchar(255)"`
	GithubURL   string `gorm:"column:github_url;type:varchar(255)"`
	Difficulty  string `gorm:"column:difficulty;type:varchar(16)"`
	Tags        string `gorm:"column:tags;type:text"` // JSON 字符串数组
	CreatedAt   string `gorm:"column:created_at;type:varchar(40);index"`
}

func (IssueTable) TableName() string {
	return "issues"
}

type MemberTable struct {
	ID             uint    `gorm:"column:id;primaryKey"`
	Name           string  `gorm:"column:name;type:varchar(100);not null"`
	GithubUsername *string `gorm:"column:github_username;type:varchar(100)"`
}

func (MemberTable) TableName() string {
	return "members"
}

type ProjectTable struct {
	UUID               string `gorm:"column:uuid;type:varchar(36);primaryKey"`
	Name               string `gorm:"column:name;type:varchar(255);not null"`
	Description        string `gorm:"column:description;type:text"`
	GithubURL          string `gorm:"column:github_url;type:varchar(255)"`
	LeaderID           uint   `gorm:"column:leader_id;index"`
	Status             string `gorm:"column:status;type:varchar(32)"`
	TechStack          string `gorm:"column:tech_stack;type:text"`
	ContributorsNeeded int    `gorm:"column:contributors_needed;not null;default:0"`
	SkillsNeeded       string `gorm:"column:skills_needed;type:text"`
	CreatedAt          string `gorm:"column:created_at;type:varchar(40);index"`
}

func (ProjectTable) TableName() string {
	return "projects"
}

type BlogPostTable struct {
	ID                string  `gorm:"column:id;type:varchar(36);primaryKey"`
	Title             string  `gorm:"column:title;type:varchar(255);not null"`
	Slug              string  `gorm:"column:slug;type:varchar(255);uniqueIndex"`
	Excerpt           string  `gorm:"column:excerpt;type:text"`
	PostType          string  `gorm:"column:post_type;type:varchar(32)"`
	Category          string  `gorm:"column:category;type:varchar(32)"`
	Tags              string  `gorm:"column:tags;type:text"`
	AuthorName        string  `gorm:"column:author_name;type:varchar(100)"`
	AuthorGithub      *string `gorm:"column:author_github;type:varchar(100)"`
	DifficultyLevel   *string `gorm:"column:difficulty_level;type:varchar(16)"`
	EstimatedReadTime int     `gorm:"column:estimated_read_time;not null;default:0"`
	PublishedAt       string  `gorm:"column:published_at;type:varchar(40);index"`
	UpdatedAt         *string `gorm:"column:updated_at;type:varchar(40)"`
	Views             int     `gorm:"column:views;not null;default:0"`
	Likes             int     `gorm:"column:likes;not null;default:0"`
	MarkdownURL       string  `gorm:"column:markdown_url;type:varchar(512)"`
	SeriesTitle       *string `gorm:"column:series_title;type:varchar(255)"`
	SeriesPart        *int    `gorm:"column:series_part"`
	SeriesTotalParts  *int    `gorm:"column:series_total_parts"`
	ExternalLinks     *string `gorm:"column:external_links;type:text"`
}

func (BlogPostTable) TableName() string {
	return "blog_posts"
}

// Tables 需要自动迁移的表
func Tables() []any {
	return []any{
		&EventTable{},
		&IssueTable{},
		&MemberTable{},
		&ProjectTable{},
		&BlogPostTable{},
	}
}
