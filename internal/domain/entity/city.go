package entity

// City is a registered node of the transport network.
// Index is assigned on first registration and never changes.
type City struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Connection is one undirected, mode-specific edge between two cities
type Connection struct {
	From string `json:"from"`
	To   string `json:"to"`
	Mode Mode   `json:"-"`
	Cost int64  `json:"cost"`
	Time int64  `json:"time"`
}
