package postgres

import "database/sql"

// Queryer é o subconjunto de *sql.DB usado pelos repositórios; permite
// trocar a conexão por uma transação.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
