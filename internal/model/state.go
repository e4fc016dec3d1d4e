package model

// UserProfile is the progression record for one identity. Level is always
// derived from points (see rules.ComputeLevel); points never go negative.
type UserProfile struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Level           int     `json:"level"`
	Points          int     `json:"points"`
	Rank            int     `json:"rank"`
	TotalUsers      int     `json:"totalUsers"`
	JoinDate        string  `json:"joinDate"`
	EventsJoined    int     `json:"eventsJoined"`
	ProductsScanned int     `json:"productsScanned"`
	CarbonSavedKg   float64 `json:"carbonSavedKg"`
	TreesPlanted    int     `json:"treesPlanted"`
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
}

type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Location     string   `json:"location"`
	Distance     string   `json:"distance"`
	Attendees    int      `json:"attendees"`
	MaxAttendees int      `json:"maxAttendees"`
	Category     string   `json:"category"`
	Organizer    string   `json:"organizer"`
	Points       int      `json:"points"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
}

type ScannerProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Barcode         string   `json:"barcode"`
	EcoScore        int      `json:"ecoScore"`
	CarbonFootprint string   `json:"carbonFootprint"`
	WaterUsage      string   `json:"waterUsage"`
	Recyclable      bool     `json:"recyclable"`
	Certifications  []string `json:"certifications"`
	Description     string   `json:"description"`
	Alternatives    []string `json:"alternatives"`
}

type StoreProduct struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          int      `json:"price"`
	OriginalPrice  int      `json:"originalPrice"`
	Discount       int      `json:"discount"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Category       string   `json:"category"`
	EcoScore       int      `json:"ecoScore"`
	Certifications []string `json:"certifications"`
	Image          string   `json:"image"`
	InStock        bool     `json:"inStock"`
	PointsReward   int      `json:"pointsReward"`
	NGOSupport     string   `json:"ngoSupport"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID       string     `json:"id"`
	Items    []CartItem `json:"items"`
	Total    int        `json:"total"`
	PlacedAt string     `json:"placedAt"`
}

type ScanHistoryItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	ScannedAt string `json:"scannedAt"`
}

type CarbonData struct {
	Electricity float64 `json:"electricity"`
	Transport   float64 `json:"transport"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
}

type WasteData struct {
	Plastic    float64 `json:"plastic"`
	Organic    float64 `json:"organic"`
	Paper      float64 `json:"paper"`
	Electronic float64 `json:"electronic"`
}

type TransportData struct {
	Walking         float64 `json:"walking"`
	Cycling         float64 `json:"cycling"`
	PublicTransport float64 `json:"publicTransport"`
	Car             float64 `json:"car"`
}

type TrackerSnapshot struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	CarbonData    CarbonData    `json:"carbonData"`
	WasteData     WasteData     `json:"wasteData"`
	TransportData TransportData `json:"transportData"`
}

type CourseProgress struct {
	ID       string `json:"id"`
	Progress int    `json:"progress"`
}

// EcosphereState is the full per-identity snapshot. It is what the persistence
// layer serializes as one record; field names must stay stable because stored
// payloads are unmarshalled back onto a fresh seed (absent fields keep the
// seed's value).
type EcosphereState struct {
	User             UserProfile       `json:"user"`
	Events           []Event           `json:"events"`
	EventRsvps       []string          `json:"eventRsvps"`
	ScannerProducts  []ScannerProduct  `json:"scannerProducts"`
	ScanHistory      []ScanHistoryItem `json:"scanHistory"`
	StoreProducts    []StoreProduct    `json:"storeProducts"`
	Cart             []CartItem        `json:"cart"`
	Orders           []Order           `json:"orders"`
	TrackerSnapshots []TrackerSnapshot `json:"trackerSnapshots"`
	CourseProgress   []CourseProgress  `json:"courseProgress"`
}
