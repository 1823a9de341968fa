package respond

// GetUserInfoRespond is a user profile with its derived role view.
type GetUserInfoRespond struct {
	UserId     string   `json:"userId"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Avatar     string   `json:"avatar"`
	Roles      []string `json:"roles"`
	ActiveRole string   `json:"activeRole"`
	Status     int8     `json:"status"`
	CreatedAt  string   `json:"createdAt"`
}

// GetUserListRespond is one page of accounts for the admin listing.
type GetUserListRespond struct {
	Total int64                `json:"total"`
	Users []GetUserInfoRespond `json:"users"`
}
