package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type DBCustomer struct {
	Id                string           `db:"id"`
	Name              string           `db:"name"`
	Email             string           `db:"email"`
	PhoneNumber       string           `db:"phone_number"`
	Gender            string           `db:"gender"`
	DateOfBirth       time.Time        `db:"date_of_birth"`
	Address           string           `db:"address"`
	ProfileImageUrl   *string          `db:"profile_image_url"`
	IdentificationUrl *string          `db:"identification_url"`
	Status            string           `db:"status"`
	UserId            *string          `db:"user_id"`
	TotalBookings     int              `db:"total_bookings"`
	TotalSpent        decimal.Decimal  `db:"total_spent"`
	LastBookingDate   pgtype.Timestamp `db:"last_booking_date"`
	CreatedBy         *string          `db:"created_by"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

const TABLE_CUSTOMERS = "customers"

var SelectCustomerColumn = utils.ColumnList[DBCustomer]()

func AdaptCustomer(db DBCustomer) (models.Customer, error) {
	customer := models.Customer{
		Id:                db.Id,
		Name:              db.Name,
		Email:             db.Email,
		PhoneNumber:       db.PhoneNumber,
		Gender:            models.Gender(db.Gender),
		DateOfBirth:       db.DateOfBirth,
		Address:           db.Address,
		ProfileImageUrl:   db.ProfileImageUrl,
		IdentificationUrl: db.IdentificationUrl,
		Status:            models.CustomerStatus(db.Status),
		UserId:            db.UserId,
		TotalBookings:     db.TotalBookings,
		TotalSpent:        db.TotalSpent,
		CreatedBy:         db.CreatedBy,
		CreatedAt:         db.CreatedAt,
		UpdatedAt:         db.UpdatedAt,
	}
	if db.LastBookingDate.Valid {
		customer.LastBookingDate = &db.LastBookingDate.Time
	}
	return customer, nil
}
