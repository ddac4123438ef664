package types

// Product is a retail-site search result. It is never persisted; it only rides
// back in shop-the-look responses.
type Product struct {
  Name        string    `json:"name"`
  Price       string    `json:"price"`
  Brand       string    `json:"brand,omitempty"`
  ImageURL    string    `json:"image"`
  ProductURL  string    `json:"productUrl"`
  Source      string    `json:"source"`
}
