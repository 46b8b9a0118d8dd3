package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo data if DB is empty (idempotent; safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  user_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('CUSTOMER','STORE')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id INTEGER NULL REFERENCES users(user_id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Subscription plans
CREATE TABLE IF NOT EXISTS plans(
  plan_id INTEGER PRIMARY KEY,
  period TEXT NOT NULL CHECK (period IN ('monthly','quarterly','semestral','annual')),
  cost NUMERIC NOT NULL CHECK (cost >= 0)
);

-- Stores (plan_id = 0 means no active plan)
CREATE TABLE IF NOT EXISTS stores(
  store_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  owner_name TEXT NOT NULL DEFAULT '',
  user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
  plan_id INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_stores_user ON stores(user_id);

-- One location per store
CREATE TABLE IF NOT EXISTS locations(
  store_id INTEGER PRIMARY KEY REFERENCES stores(store_id) ON DELETE CASCADE,
  latitude REAL NOT NULL CHECK (latitude BETWEEN -90 AND 90),
  longitude REAL NOT NULL CHECK (longitude BETWEEN -180 AND 180),
  address TEXT NOT NULL DEFAULT ''
);

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  category_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  product_id INTEGER PRIMARY KEY AUTOINCREMENT,
  store_id INTEGER NOT NULL REFERENCES stores(store_id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  category_id INTEGER NOT NULL REFERENCES categories(category_id) ON DELETE RESTRICT,
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','inactive'))
);
CREATE INDEX IF NOT EXISTS idx_products_store    ON products(store_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Reviews (rating kept as text: numeric "1".."5" or a legacy label)
CREATE TABLE IF NOT EXISTS reviews(
  review_id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(product_id) ON DELETE CASCADE,
  rating TEXT NOT NULL,
  comment TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM plans`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo plans/categories/stores/products")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO plans(plan_id,period,cost) VALUES
	  (1,'monthly',9990),
	  (2,'quarterly',26990),
	  (3,'semestral',49990),
	  (4,'annual',89990)`)

	tx.MustExec(`INSERT INTO categories(category_id,name,description) VALUES
	  (1,'Instrumentos','Instrumentos musicales'),
	  (2,'Audio','Equipos de audio'),
	  (3,'Accesorios','Cables, atriles y repuestos')`)

	return tx.Commit()
}

// seedUsers ensures demo accounts plus their stores exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash := func(raw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return string(h)
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO users(user_id,name,email,phone,password_hash,role) VALUES
	  (1,'Carla','carla@ubishop.test','+56911111111',?, 'CUSTOMER'),
	  (2,'Don Mario','mario@ubishop.test','+56922222222',?, 'STORE'),
	  (3,'Rosa','rosa@ubishop.test','+56933333333',?, 'STORE')`,
		hash("Passw0rd!"), hash("Passw0rd!"), hash("Passw0rd!"))

	tx.MustExec(`INSERT INTO stores(store_id,name,description,owner_name,user_id,plan_id) VALUES
	  (1,'Musica Mario','Instrumentos nuevos y usados','Mario Soto',2,1),
	  (2,'Audio Rosa','Equipos de audio del centro','Rosa Vidal',3,0)`)

	tx.MustExec(`INSERT INTO locations(store_id,latitude,longitude,address) VALUES
	  (1,-35.4355,-71.6433,'1 Oriente 1234, Talca'),
	  (2,-35.4270,-71.6554,'2 Sur 456, Talca')`)

	tx.MustExec(`INSERT INTO products(product_id,store_id,name,description,price,category_id,status) VALUES
	  (1,1,'Guitarra clasica','Tapa de cedro, cuerdas de nylon',119990,1,'active'),
	  (2,1,'Amplificador 20W','Combo de practica',89990,2,'active'),
	  (3,1,'Atril plegable','Acero, altura regulable',14990,3,'inactive'),
	  (4,2,'Microfono dinamico','Para voz en vivo',59990,2,'active')`)

	tx.MustExec(`INSERT INTO reviews(user_id,product_id,rating,comment) VALUES
	  (1,1,'5','Excelente terminacion'),
	  (1,1,'3','Llego con una cuerda cortada'),
	  (1,2,'Good','Suena bien para el precio')`)

	return tx.Commit()
}
