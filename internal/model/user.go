package model

type User struct {
	ID                int64
	CreationDate      int64
	Email             string
	Fullname          string
	Username          string
	LearningLanguage  string
	UILanguage        string
	PictureURL        string
	Subscribed        bool
	SubscriberCount   int
	SubscriptionCount int
}
