// Package generator provides the file-operation engine behind project
// scaffolding: staged operations, dry-run execution, and transactional
// commits with rollback.
//
// # Transactions
//
// Use a transaction to write a whole project tree atomically:
//
//	tx := generator.NewTransaction(projectPath)
//	tx.Add(&generator.MkdirOp{Path: projectPath})
//	tx.Add(&generator.WriteFileOp{Path: gitignorePath, Content: content, Mode: 0644})
//
//	if err := tx.Commit(ctx); err != nil {
//	    // The project directory was removed; err is the original failure.
//	    return err
//	}
//
// If any operation fails, the transaction removes everything under its
// cleanup root, ensuring no partial project is left on disk.
package generator
