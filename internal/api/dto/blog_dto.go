package dto

// BlogPostDTO public blog payload.
type BlogPostDTO struct {
	ID          uint64   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags"`
	CoverURL    string   `json:"cover_url"`
	AIGenerated bool     `json:"ai_generated"`
	Status      int      `json:"status,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// CreateBlogPostDTO admin create/update body.
type CreateBlogPostDTO struct {
	Slug    string   `json:"slug" binding:"required,max=120"`
	Title   string   `json:"title" binding:"required,max=200"`
	Summary string   `json:"summary"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
	Status  int      `json:"status" binding:"oneof=0 1 2"`
}

// GenerateBlogPostDTO admin AI-draft request.
type GenerateBlogPostDTO struct {
	Topic     string `json:"topic" binding:"required,max=200"`
	SourceURL string `json:"source_url"`
}

// BlogSearchDTO search query params. Either a free-text query or a tag
// filter must be present.
type BlogSearchDTO struct {
	Query string `form:"query"`
	Tag   string `form:"tag"`
	From  int    `form:"from"`
	Size  int    `form:"size"`
}
