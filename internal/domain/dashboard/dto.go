package dashboard

// SnapshotResponse is the point-in-time aggregate served by the
// dashboard endpoint. Computed fresh on every request, never cached.
type SnapshotResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
	PresentToday   int64 `json:"presentToday"`
	AbsentToday    int64 `json:"absentToday"`
}
