package domain

// Profile holds the authenticated user's account details.
// CompletionPercent is derived server-side and read-only here.
type Profile struct {
	Username          string
	Email             string
	Fullname          string
	Phone             string
	Location          string
	Website           string
	Bio               string
	Twitter           string
	Instagram         string
	PrivateProfile    bool
	EmailNotify       bool
	PushNotify        bool
	ProfilePictureURL string
	CompletionPercent int
}

// Statistics aggregates the user's own posting activity.
type Statistics struct {
	TotalPosts    int
	TotalLikes    int
	TotalSupports int
	TotalComments int
	ActivePosts   int
	ExpiredPosts  int
}
