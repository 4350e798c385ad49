package dto

// CategoriaResponse feeds the admin product form's category selector.
type CategoriaResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Slug      string  `json:"slug"`
	Descricao *string `json:"descricao"`
	Ordem     int     `json:"ordem"`
}
