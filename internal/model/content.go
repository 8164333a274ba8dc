package model

import "time"

// Member 成员值对象，不可单独寻址
type Member struct {
	Name           string  `json:"name"`
	GithubUsername *string `json:"github_username"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // 展示用文案，如 "Every Friday"
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	EventType   EventType `json:"event_type"`
	Recurring   bool      `json:"recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

type Issue struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Repo        string          `json:"repo"` // owner/name
	GithubURL   string          `json:"github_url"`
	Difficulty  DifficultyLevel `json:"difficulty"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Project struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	GithubURL          string        `json:"github_url"`
	Leader             Member        `json:"leader"`
	Contributors       []Member      `json:"contributors"` // 目前没有查询填充贡献者，始终为空
	Status             ProjectStatus `json:"status"`
	TechStack          []string      `json:"tech_stack"`
	ContributorsNeeded bool          `json:"contributors_needed"`
	SkillsNeeded       []string      `json:"skills_needed"`
	CreatedAt          time.Time     `json:"created_at"`
}

type BlogSeries struct {
	Title      string  `json:"title"`
	Part       uint32  `json:"part"`
	TotalParts *uint32 `json:"total_parts"`
}

type ExternalLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type BlogPost struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Slug              string           `json:"slug"`
	Excerpt           string           `json:"excerpt"`
	PostType          BlogPostType     `json:"post_type"`
	Category          BlogCategory     `json:"category"`
	Tags              []string         `json:"tags"`
	AuthorName        string           `json:"author_name"`
	AuthorGithub      *string          `json:"author_github"`
	DifficultyLevel   *DifficultyLevel `json:"difficulty_level"`
	EstimatedReadTime uint32           `json:"estimated_read_time"` // 分钟
	PublishedAt       string           `json:"published_at"`
	UpdatedAt         *string          `json:"updated_at"`
	Views             uint32           `json:"views"`
	Likes             uint32           `json:"likes"`
	MarkdownURL       string           `json:"markdown_url"` // 正文托管在外部存储
	Series            *BlogSeries      `json:"series"`
	ExternalLinks     []ExternalLink   `json:"external_links"`
}

// Stats 计算得出并缓存的聚合数据，不对应任何表
type Stats struct {
	ActiveMembers         uint32 `json:"active_members"`
	PRsMergedThisSemester uint32 `json:"prs_merged_this_semester"`
	WorkshopsHeld         uint32 `json:"workshops_held"`
	ProjectsContributedTo uint32 `json:"projects_contributed_to"`
}

type HealthCheck struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
