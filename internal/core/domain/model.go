package domain

type Message struct {
	ID     int
	ChatID int64
	Text   string
}

// Watchlist is the persisted state: the one chat receiving periodic reports
// and the set of watched domains. Domains are stored lowercase, deduplicated
// and sorted ascending.
type Watchlist struct {
	ChatID  *int64   `json:"chat_id"`
	Domains []string `json:"domains"`
}

// StatusResult is the outcome of a single domain lookup. A failed lookup
// carries its message in Err; Err is never accompanied by a usable status.
type StatusResult struct {
	Status string `json:"status"`
	IP     string `json:"ip"`
	Domain string `json:"domain"`
	Err    string `json:"error"`
}

const StatusBlocked = "BLOCKED"
