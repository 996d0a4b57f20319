package request_models

// VendorUpsertRequest adds or replaces a single vendor record. Only the
// attribute fields matching Type are read; the rest are ignored.
type VendorUpsertRequest struct {
	ID           string `json:"id"`
	Type         string `json:"type" binding:"required"`
	City         string `json:"city" binding:"required"`
	ProviderName string `json:"provider_name" binding:"required"`
	ContactInfo  string `json:"contact_info"`

	BusType           string   `json:"bus_type"`
	RoutesCovered     string   `json:"routes_covered"`
	VehicleTypes      string   `json:"vehicle_types"`
	IntercityCoverage string   `json:"intercity_coverage"`
	StayType          string   `json:"stay_type"`
	RoomCategories    string   `json:"room_categories"`
	Facilities        string   `json:"facilities"`
	OnlineLink        string   `json:"online_link"`
	ActivityTypes     []string `json:"activity_types"`
}

// VendorSyncRequest points the sync job at a provider feed.
type VendorSyncRequest struct {
	FeedURL string `json:"feed_url"`
}

// ServiceFeedItem mirrors one entry of the desire4travels service-provider
// feed. Field names follow the feed payload, not our storage schema.
type ServiceFeedItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	// adventure
	AgencyName    string `json:"agencyName"`
	Location      string `json:"location"`
	ActivityTypes string `json:"activityTypes"`

	// bus
	CompanyName   string `json:"companyName"`
	BaseCity      string `json:"baseCity"`
	RoutesCovered string `json:"routesCovered"`
	BusType       string `json:"busType"`

	// cab
	Company           string `json:"company"`
	VehicleTypes      string `json:"vehicleTypes"`
	IntercityCoverage string `json:"intercityCoverage"`

	// hotel
	HotelName      string `json:"hotelName"`
	City           string `json:"city"`
	OnlineLink     string `json:"onlineLink"`
	StayType       string `json:"stayType"`
	RoomCategories string `json:"roomCategories"`
	Facilities     string `json:"facilities"`

	ContactPerson string `json:"contactPerson"`
	ContactMobile string `json:"contactMobile"`
}
