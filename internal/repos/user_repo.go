package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT user_id, name, email, phone, password_hash, role
	  FROM users
	  WHERE LOWER(email) = LOWER(?)
	`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT user_id, name, email, phone, password_hash, role
	  FROM users
	  WHERE user_id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) (int, error) {
	res, err := r.DB.Exec(`
	  INSERT INTO users(name, email, phone, password_hash, role)
	  VALUES (?, ?, ?, ?, ?)
	`, u.Name, u.Email, u.Phone, u.Hash, u.Role)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *UserRepo) UpdateProfile(id int, name, phone string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE users SET name = ?, phone = ? WHERE user_id = ?`, name, phone, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *UserRepo) BindSession(sid string, userID int) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.user_id, u.name, u.email, u.phone, u.password_hash, u.role
      FROM sessions s
      JOIN users u ON u.user_id = s.user_id
      WHERE s.id = ?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
