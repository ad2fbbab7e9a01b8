package audit

import "github.com/eksamtint/Eksamtint/pkg/dbexec"

// DBExecutor интерфейс для работы с БД, удовлетворяется *sql.DB
type DBExecutor = dbexec.DBExecutor
