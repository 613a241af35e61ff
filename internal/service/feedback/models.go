package feedback

// Input данные нового отзыва
type Input struct {
	AppointmentID string
	UserID        string
	UserName      string
	Rating        int
	Comment       string
}

// Patch частичное обновление отзыва
type Patch struct {
	Rating  *int
	Comment *string
}
