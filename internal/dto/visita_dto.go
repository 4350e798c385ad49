package dto

// RegistrarVisitaRequest is the beacon body sent once per page view.
// Visitor id comes from the cookie, user agent from the request header.
type RegistrarVisitaRequest struct {
	Pagina   string  `json:"pagina"`
	Referrer *string `json:"referrer"`
}
