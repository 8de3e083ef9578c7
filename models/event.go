package models

type Event struct {
	EventID           int          `bson:"event_id,omitempty" json:"event_id,omitempty"`
	Title             string       `bson:"title,omitempty" json:"title,omitempty"`
	Description       string       `bson:"description,omitempty" json:"description,omitempty"`
	StartDate         string       `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate           string       `bson:"end_date,omitempty" json:"end_date,omitempty"`
	StartTime         string       `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime           string       `bson:"end_time,omitempty" json:"end_time,omitempty"`
	DisplayDate       string       `bson:"display_date,omitempty" json:"display_date,omitempty"`
	DisplayTime       string       `bson:"display_time,omitempty" json:"display_time,omitempty"`
	FriendlyStartDate string       `bson:"friendly_start_date,omitempty" json:"friendly_start_date,omitempty"`
	FriendlyEndDate   string       `bson:"friendly_end_date,omitempty" json:"friendly_end_date,omitempty"`
	DateAdded         string       `bson:"date_added,omitempty" json:"date_added,omitempty"`
	Photos            []EventPhoto `bson:"photos,omitempty" json:"photos,omitempty"`
	ShareURL          string       `bson:"share_url,omitempty" json:"share_url,omitempty"`
	BookLink          string       `bson:"book_link,omitempty" json:"book_link,omitempty"`
	Restaurants       []string     `bson:"restaurants,omitempty" json:"restaurants,omitempty"`
	Disclaimer        string       `bson:"disclaimer,omitempty" json:"disclaimer,omitempty"`
	EventCategory     int          `bson:"event_category,omitempty" json:"event_category,omitempty"`
	EventCategoryName string       `bson:"event_category_name,omitempty" json:"event_category_name,omitempty"`
	IsActive          int          `bson:"is_active,omitempty" json:"is_active,omitempty"`
	IsValid           int          `bson:"is_valid,omitempty" json:"is_valid,omitempty"`
	IsEndTimeSet      int          `bson:"is_end_time_set,omitempty" json:"is_end_time_set,omitempty"`
}

type EventPhoto struct {
	PhotoID  int    `bson:"photo_id,omitempty" json:"photo_id,omitempty"`
	Order    int    `bson:"order,omitempty" json:"order,omitempty"`
	Type     string `bson:"type,omitempty" json:"type,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	ThumbURL string `bson:"thumb_url,omitempty" json:"thumb_url,omitempty"`
	MD5Sum   string `bson:"md5sum,omitempty" json:"md5sum,omitempty"`
	UUID     string `bson:"uuid,omitempty" json:"uuid,omitempty"`
}
