package logger

import "context"

// Keys for store entity ids, shared so every log line names them the same way.
const (
	FieldOrderID   = "order_id"
	FieldCashierID = "cashier_id"
	FieldProductID = "product_id"
)

func (l *Logger) WithOrderID(ctx context.Context, id int) context.Context {
	return l.WithField(ctx, FieldOrderID, id)
}

func (l *Logger) WithCashierID(ctx context.Context, id int) context.Context {
	return l.WithField(ctx, FieldCashierID, id)
}

func (l *Logger) WithProductID(ctx context.Context, id int) context.Context {
	return l.WithField(ctx, FieldProductID, id)
}
