package domain

// Product — товар в том виде, в каком он представлен на витрине.
type Product struct {
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	ImageRef string `json:"image_ref"`
}
