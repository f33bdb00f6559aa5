package models

// QuizResult is the scored outcome of one submission. It is returned to
// the student and never persisted; ResultPDF is a base64 data URI the
// browser can download as result.pdf.
type QuizResult struct {
	Name      string `json:"name"`
	Standard  string `json:"standard"`
	Subject   string `json:"subject"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	ResultPDF string `json:"result_pdf"`
}
