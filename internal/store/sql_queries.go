package store

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash;`

	findUserByID = `SELECT id, username, email, password_hash
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT id, username, email, password_hash
    FROM users
    WHERE email = $1;`

	findUsers = `SELECT id, username, email, password_hash
    FROM users
    ORDER BY id
    LIMIT $1;`

	updateUser = `UPDATE users
    SET username = $2, email = $3, password_hash = $4
    WHERE id = $1
    RETURNING id, username, email, password_hash;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)
