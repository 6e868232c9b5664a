package ast

// StartTransactionStatement is "START TRANSACTION" (also parsed from
// "BEGIN [WORK]"). The canonical form is always START TRANSACTION.
type StartTransactionStatement struct{}

func (s *StartTransactionStatement) QueryType() string { return "START TRANSACTION" }
func (s *StartTransactionStatement) isQuery()          {}
func (s *StartTransactionStatement) String() string    { return "START TRANSACTION" }

// CommitStatement is "COMMIT [WORK]".
type CommitStatement struct{}

func (s *CommitStatement) QueryType() string { return "COMMIT" }
func (s *CommitStatement) isQuery()          {}
func (s *CommitStatement) String() string    { return "COMMIT" }

// RollbackStatement is "ROLLBACK [WORK]".
type RollbackStatement struct{}

func (s *RollbackStatement) QueryType() string { return "ROLLBACK" }
func (s *RollbackStatement) isQuery()          {}
func (s *RollbackStatement) String() string    { return "ROLLBACK" }
