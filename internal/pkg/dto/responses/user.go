package responses

type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type UpsertUser struct {
	Result *UpdateResult `json:"result"`
	Token  string        `json:"token"`
}

type AdminStatus struct {
	Admin bool `json:"admin"`
}
