package store

import (
	"database/sql"
	"time"
)

// User is an admin panel account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  sql.NullTime
}

// HeroSlide is a homepage carousel entry.
type HeroSlide struct {
	ID         int64
	Title      string
	Subtitle   sql.NullString
	ButtonText sql.NullString
	ButtonUrl  sql.NullString
	ImagePath  string
	IsActive   bool
	SortOrder  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Event is a scheduled trip or seminar shown on the site.
type Event struct {
	ID          int64
	Title       string
	Description string
	Location    sql.NullString
	StartsAt    sql.NullTime
	Price       float64
	IsAvailable bool
	ImagePath   sql.NullString
	SortOrder   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Testimonial is a customer review.
type Testimonial struct {
	ID        int64
	Name      string
	Country   sql.NullString
	Rating    int64
	Content   string
	ImagePath sql.NullString
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Faq is a frequently asked question entry.
type Faq struct {
	ID        int64
	Question  string
	Answer    string
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SocialMedium is a social network profile link.
type SocialMedium struct {
	ID        int64
	Name      string
	Url       string
	IconPath  sql.NullString
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UmrahPackage is a bookable Umrah travel offering.
type UmrahPackage struct {
	ID            int64
	Name          string
	Slug          string
	Description   string
	Price         float64
	DurationDays  int64
	DepartureCity sql.NullString
	ImagePath     sql.NullString
	IsActive      bool
	SortOrder     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UmrahHotel is a hotel available for package itineraries.
type UmrahHotel struct {
	ID         int64
	Name       string
	City       string
	StarRating int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UmrahAirline is a carrier used by packages.
type UmrahAirline struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     sql.NullString
	Subject   sql.NullString
	Message   string
	Status    string
	UserAgent sql.NullString
	IpAddress sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewsletterSubscriber is a mailing list entry.
type NewsletterSubscriber struct {
	ID               int64
	Email            string
	Status           string
	UnsubscribeToken string
	IpAddress        sql.NullString
	CountryCode      sql.NullString
	Source           sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UnsubscribedAt   sql.NullTime
	DeletedAt        sql.NullTime
}

// AuditLog is a recorded application event.
type AuditLog struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	IpAddress sql.NullString
	Metadata  sql.NullString
	CreatedAt time.Time
}
