package converter

import "github.com/at-ishikawa/tinycards/internal/model"

func DecodeUser(data []byte) (*model.User, error) {
	obj, err := newObject("user", data)
	if err != nil {
		return nil, err
	}

	var user model.User
	obj.required("creationDate", &user.CreationDate)
	obj.required("email", &user.Email)
	obj.required("fullname", &user.Fullname)
	obj.required("id", &user.ID)
	obj.required("learningLanguage", &user.LearningLanguage)
	obj.required("pictureUrl", &user.PictureURL)
	obj.required("subscribed", &user.Subscribed)
	obj.required("subscriberCount", &user.SubscriberCount)
	obj.required("subscriptionCount", &user.SubscriptionCount)
	obj.required("uiLanguage", &user.UILanguage)
	obj.required("username", &user.Username)
	if obj.err != nil {
		return nil, obj.err
	}
	return &user, nil
}
