package schedule

import "github.com/klepi21/barberians/pkg/txmanager"

// Переиспользуем интерфейс executor из txmanager:
// репозиторий не различает *sql.DB и транзакцию из контекста
type Executor = txmanager.Executor
