package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

// ContentRepository backs the website content admin: about, brand, counters,
// FAQs, gallery, testimonials. About and brand behave as singletons (the site
// renders one of each); the rest are ordered lists.
type ContentRepository struct {
	DB *sql.DB
}

func (r ContentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// --- about ---

func (r ContentRepository) GetAbout() (models.About, error) {
	var a models.About
	err := r.db().QueryRow(`
		SELECT id, COALESCE(title,''), COALESCE(body,''), COALESCE(image_url,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM abouts ORDER BY id DESC LIMIT 1
	`).Scan(&a.ID, &a.Title, &a.Body, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.About{}, domain.NotFoundError{Resource: "about"}
	}
	return a, err
}

func (r ContentRepository) UpsertAbout(a models.About) (models.About, error) {
	existing, err := r.GetAbout()
	if err != nil && !domain.IsNotFound(err) {
		return models.About{}, err
	}
	if existing.ID > 0 {
		_, err = r.db().Exec(`
			UPDATE abouts SET title=?, body=?, image_url=?, updated_at=NOW() WHERE id=?
		`, a.Title, a.Body, intdb.NullIfEmpty(a.ImageURL), existing.ID)
		if err != nil {
			return models.About{}, err
		}
		return r.GetAbout()
	}
	_, err = r.db().Exec(`
		INSERT INTO abouts (title, body, image_url, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, a.Title, a.Body, intdb.NullIfEmpty(a.ImageURL))
	if err != nil {
		return models.About{}, err
	}
	return r.GetAbout()
}

// --- brand ---

func (r ContentRepository) GetBrand() (models.Brand, error) {
	var b models.Brand
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(tagline,''), COALESCE(logo_url,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM brands ORDER BY id DESC LIMIT 1
	`).Scan(&b.ID, &b.Name, &b.Tagline, &b.LogoURL, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Brand{}, domain.NotFoundError{Resource: "brand"}
	}
	return b, err
}

func (r ContentRepository) UpsertBrand(b models.Brand) (models.Brand, error) {
	existing, err := r.GetBrand()
	if err != nil && !domain.IsNotFound(err) {
		return models.Brand{}, err
	}
	if existing.ID > 0 {
		_, err = r.db().Exec(`
			UPDATE brands SET name=?, tagline=?, logo_url=?, updated_at=NOW() WHERE id=?
		`, b.Name, b.Tagline, intdb.NullIfEmpty(b.LogoURL), existing.ID)
		if err != nil {
			return models.Brand{}, err
		}
		return r.GetBrand()
	}
	_, err = r.db().Exec(`
		INSERT INTO brands (name, tagline, logo_url, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, b.Name, b.Tagline, intdb.NullIfEmpty(b.LogoURL))
	if err != nil {
		return models.Brand{}, err
	}
	return r.GetBrand()
}

// --- counters ---

func (r ContentRepository) ListCounters() ([]models.Counter, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(label,''), COALESCE(value,0), COALESCE(icon,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM counters ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Counter{}
	for rows.Next() {
		var c models.Counter
		if err := rows.Scan(&c.ID, &c.Label, &c.Value, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ContentRepository) CreateCounter(c models.Counter) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO counters (label, value, icon, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, c.Label, c.Value, intdb.NullIfEmpty(c.Icon))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateCounter(c models.Counter) error {
	return r.updateByID(`UPDATE counters SET label=?, value=?, icon=?, updated_at=NOW() WHERE id=?`,
		"counter", c.ID, c.Label, c.Value, intdb.NullIfEmpty(c.Icon))
}

func (r ContentRepository) DeleteCounter(id int64) error {
	return r.deleteByID(`DELETE FROM counters WHERE id=?`, "counter", id)
}

// --- faqs ---

func (r ContentRepository) ListFAQs() ([]models.FAQ, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(question,''), COALESCE(answer,''), COALESCE(sort_order,0),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM faqs ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FAQ{}
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r ContentRepository) CreateFAQ(f models.FAQ) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO faqs (question, answer, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, f.Question, f.Answer, f.SortOrder)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateFAQ(f models.FAQ) error {
	return r.updateByID(`UPDATE faqs SET question=?, answer=?, sort_order=?, updated_at=NOW() WHERE id=?`,
		"faq", f.ID, f.Question, f.Answer, f.SortOrder)
}

func (r ContentRepository) DeleteFAQ(id int64) error {
	return r.deleteByID(`DELETE FROM faqs WHERE id=?`, "faq", id)
}

// --- gallery ---

func (r ContentRepository) ListGallery() ([]models.GalleryItem, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(title,''), COALESCE(image_url,''), COALESCE(sort_order,0),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM galleries ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.GalleryItem{}
	for rows.Next() {
		var g models.GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.ImageURL, &g.SortOrder, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r ContentRepository) CreateGalleryItem(g models.GalleryItem) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO galleries (title, image_url, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, g.Title, g.ImageURL, g.SortOrder)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateGalleryItem(g models.GalleryItem) error {
	return r.updateByID(`UPDATE galleries SET title=?, image_url=?, sort_order=?, updated_at=NOW() WHERE id=?`,
		"gallery item", g.ID, g.Title, g.ImageURL, g.SortOrder)
}

func (r ContentRepository) DeleteGalleryItem(id int64) error {
	return r.deleteByID(`DELETE FROM galleries WHERE id=?`, "gallery item", id)
}

// --- testimonials ---

func (r ContentRepository) ListTestimonials() ([]models.Testimonial, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(author,''), COALESCE(company,''), COALESCE(quote,''), COALESCE(avatar_url,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM testimonials ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Testimonial{}
	for rows.Next() {
		var tm models.Testimonial
		if err := rows.Scan(&tm.ID, &tm.Author, &tm.Company, &tm.Quote, &tm.AvatarURL, &tm.CreatedAt, &tm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, tm)
	}
	return out, rows.Err()
}

func (r ContentRepository) CreateTestimonial(tm models.Testimonial) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO testimonials (author, company, quote, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, tm.Author, intdb.NullIfEmpty(tm.Company), tm.Quote, intdb.NullIfEmpty(tm.AvatarURL))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateTestimonial(tm models.Testimonial) error {
	return r.updateByID(`UPDATE testimonials SET author=?, company=?, quote=?, avatar_url=?, updated_at=NOW() WHERE id=?`,
		"testimonial", tm.ID, tm.Author, intdb.NullIfEmpty(tm.Company), tm.Quote, intdb.NullIfEmpty(tm.AvatarURL))
}

func (r ContentRepository) DeleteTestimonial(id int64) error {
	return r.deleteByID(`DELETE FROM testimonials WHERE id=?`, "testimonial", id)
}

// --- shared ---

func (r ContentRepository) updateByID(query, resource string, id int64, args ...any) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	res, err := r.db().Exec(query, append(args, id)...)
	if err != nil {
		return err
	}
	// A no-op update also reports zero rows, so confirm existence before
	// treating it as missing.
	if n, _ := res.RowsAffected(); n == 0 {
		table := tableOf(query)
		var count int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE id=?`, id).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			return domain.NotFoundError{Resource: resource}
		}
	}
	return nil
}

func tableOf(updateQuery string) string {
	fields := strings.Fields(updateQuery)
	if len(fields) >= 2 && strings.EqualFold(fields[0], "UPDATE") {
		return fields[1]
	}
	return ""
}

func (r ContentRepository) deleteByID(query, resource string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	res, err := r.db().Exec(query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
