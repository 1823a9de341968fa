package respond

// ParticipantRespond is one chat member.
type ParticipantRespond struct {
	UserId  string `json:"userId"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	IsAdmin bool   `json:"isAdmin"`
}

// ChatRespond is a chat with its membership.
type ChatRespond struct {
	ChatId        string               `json:"chatId"`
	Type          string               `json:"type"`
	Name          string               `json:"name"`
	CreatorId     string               `json:"creatorId"`
	SchoolId      string               `json:"schoolId"`
	HasAvatar     bool                 `json:"hasAvatar"`
	LastMessageAt string               `json:"lastMessageAt,omitempty"`
	Participants  []ParticipantRespond `json:"participants,omitempty"`
}

// DuplicateChatRespond is the recovery hint attached to the conflict
// response when a private chat already exists for the pair.
type DuplicateChatRespond struct {
	ExistingChatId string `json:"existingChatId"`
}
