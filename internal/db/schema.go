package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates any missing tables. Statements use IF NOT EXISTS so a
// partially provisioned database is topped up rather than rejected.
func EnsureSchema(dbh *sql.DB) error {
	if dbh == nil {
		return fmt.Errorf("db not available")
	}
	for _, ddl := range schemaDDL {
		if _, err := dbh.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'staff',
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username),
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS sessions (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	token VARCHAR(64) NOT NULL,
	user_id BIGINT NOT NULL,
	expires_at DATETIME NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_token (token),
	KEY idx_user (user_id),
	KEY idx_expires (expires_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS clients (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	company_name VARCHAR(255) NULL,
	email VARCHAR(255) NULL,
	phone VARCHAR(100) NULL,
	mobile VARCHAR(100) NULL,
	address VARCHAR(500) NULL,
	notes TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS vehicles (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	code VARCHAR(100) NOT NULL,
	name VARCHAR(255) NULL,
	plate_number VARCHAR(100) NOT NULL,
	seat_capacity INT NOT NULL DEFAULT 0,
	rate_per_day BIGINT NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_code (code)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS trips (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	client_id BIGINT NOT NULL,
	vehicle_id BIGINT NOT NULL,
	start_date DATE NOT NULL,
	no_of_days INT NOT NULL DEFAULT 1,
	rate_per_day BIGINT NOT NULL DEFAULT 0,
	km_out BIGINT NULL,
	km_in BIGINT NULL,
	total_amount BIGINT NOT NULL DEFAULT 0,
	total_paid_amount BIGINT NOT NULL DEFAULT 0,
	payment_status VARCHAR(50) NOT NULL DEFAULT 'pending',
	notes TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_client (client_id),
	KEY idx_vehicle (vehicle_id),
	KEY idx_start_date (start_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS ticket_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	client_id BIGINT NOT NULL,
	trip_type VARCHAR(50) NOT NULL DEFAULT 'one-way',
	airline VARCHAR(255) NOT NULL,
	sector VARCHAR(255) NULL,
	travel_date DATE NULL,
	return_date DATE NULL,
	adults INT NOT NULL DEFAULT 1,
	children INT NOT NULL DEFAULT 0,
	base_fare BIGINT NOT NULL DEFAULT 0,
	taxes_and_fees BIGINT NOT NULL DEFAULT 0,
	total_amount BIGINT NOT NULL DEFAULT 0,
	amount_paid BIGINT NOT NULL DEFAULT 0,
	payment_status VARCHAR(50) NOT NULL DEFAULT 'pending',
	ticket_numbers VARCHAR(500) NULL,
	passenger_names VARCHAR(500) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_client (client_id),
	KEY idx_travel_date (travel_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS fund_entries (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	client_id BIGINT NULL,
	ticket_booking_id BIGINT NULL,
	funds_for VARCHAR(255) NOT NULL,
	total_fund BIGINT NOT NULL DEFAULT 0,
	available_fund BIGINT NOT NULL DEFAULT 0,
	used_fund BIGINT NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'completed',
	reversed_fund_id BIGINT NULL,
	notes TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_funds_for (funds_for),
	KEY idx_status (status),
	KEY idx_client (client_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS quotations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	client_id BIGINT NOT NULL,
	vehicle_id BIGINT NOT NULL,
	quote_date DATE NOT NULL,
	start_date DATE NULL,
	no_of_days INT NOT NULL DEFAULT 1,
	rate_per_day BIGINT NOT NULL DEFAULT 0,
	total_amount BIGINT NOT NULL DEFAULT 0,
	amount_paid BIGINT NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'draft',
	payment_status VARCHAR(50) NOT NULL DEFAULT 'pending',
	trip_id BIGINT NULL,
	notes TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_client (client_id),
	KEY idx_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	// reference is unique so replayed payment submissions collide instead of
	// double-crediting the target.
	`CREATE TABLE IF NOT EXISTS payments (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	target_type VARCHAR(50) NOT NULL,
	target_id BIGINT NOT NULL,
	reference VARCHAR(100) NOT NULL,
	amount BIGINT NOT NULL,
	method VARCHAR(100) NULL,
	paid_at DATETIME NULL,
	notes TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_reference (reference),
	KEY idx_target (target_type, target_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS abouts (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	body TEXT NULL,
	image_url VARCHAR(500) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS brands (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	tagline VARCHAR(500) NULL,
	logo_url VARCHAR(500) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS counters (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	label VARCHAR(255) NOT NULL,
	value BIGINT NOT NULL DEFAULT 0,
	icon VARCHAR(100) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS faqs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	question VARCHAR(500) NOT NULL,
	answer TEXT NOT NULL,
	sort_order INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS galleries (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NULL,
	image_url VARCHAR(500) NOT NULL,
	sort_order INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS testimonials (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	author VARCHAR(255) NOT NULL,
	company VARCHAR(255) NULL,
	quote TEXT NOT NULL,
	avatar_url VARCHAR(500) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}
