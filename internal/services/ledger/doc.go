/*
Package ledger implements the balance-transfer engine.

Transfer moves whole-unit stored value between two accounts and awards
asymmetric loyalty points (3% to the sender, 0.5% to the receiver, both
rounded down). The debit, the credit, both point awards, the paired
transaction-log entries, and both notifications commit in one database
transaction: no reader ever observes a partial transfer.

Concurrency rests on the database. Both account rows are locked in
consistent UID order and each balance write does a compare-and-swap on the
account version; a lost swap reruns the whole read-validate-write pass, up
to three times, before the operation is surfaced as aborted.

Failures carry a Kind so the transport layer can map them to statuses:

	Unauthenticated    no verified caller identity
	InvalidArgument    bad receiver, non-positive amount, self-transfer
	NotFound           sender or receiver account missing
	FailedPrecondition insufficient balance
	Aborted            conflict retries exhausted
	Internal           everything else, cause preserved

The operation is not idempotent: there is no request-deduplication key in
the contract, so a client that resubmits after a timeout performs a second
transfer.
*/
package ledger
