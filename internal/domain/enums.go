package domain

// FileType is the media kind of an uploaded library item.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeDocument FileType = "document"
)

func (f FileType) String() string { return string(f) }

func (f FileType) IsValid() bool {
	switch f {
	case FileTypeImage, FileTypeVideo, FileTypeDocument:
		return true
	}
	return false
}

// UploadType records how an item entered the library.
type UploadType string

const (
	UploadTypeSingle   UploadType = "single"
	UploadTypeCarousel UploadType = "carousel"
	UploadTypeBulk     UploadType = "bulk"
)

func (u UploadType) String() string { return string(u) }

func (u UploadType) IsValid() bool {
	switch u {
	case UploadTypeSingle, UploadTypeCarousel, UploadTypeBulk:
		return true
	}
	return false
}

// NotePriority is the user-assigned importance of a note.
type NotePriority string

const (
	NotePriorityLow    NotePriority = "low"
	NotePriorityNormal NotePriority = "normal"
	NotePriorityHigh   NotePriority = "high"
)

func (p NotePriority) String() string { return string(p) }

func (p NotePriority) IsValid() bool {
	switch p {
	case NotePriorityLow, NotePriorityNormal, NotePriorityHigh:
		return true
	}
	return false
}

// PostStatus is the lifecycle status of a generated post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

func (s PostStatus) String() string { return string(s) }

func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusFailed:
		return true
	}
	return false
}
