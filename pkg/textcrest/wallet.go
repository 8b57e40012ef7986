package textcrest

import (
	"context"
	"net/url"
	"strconv"
)

const (
	balancePath      = "/wallet/balance"
	transactionsPath = "/wallet/transactions"
)

const (
	defaultTransactionsPage  = 1
	defaultTransactionsLimit = 20
)

// Balance returns the current credit balance and cumulative usage of the wallet.
func (c *Client) Balance(ctx context.Context) (Balance, error) {
	var out Balance
	if err := c.get(ctx, balancePath, nil, &out); err != nil {
		return Balance{}, err
	}
	return out, nil
}

// Transactions returns one page of the wallet ledger. Non-positive page or
// limit fall back to page 1 and limit 20.
func (c *Client) Transactions(ctx context.Context, page, limit int) (TransactionPage, error) {
	if page <= 0 {
		page = defaultTransactionsPage
	}
	if limit <= 0 {
		limit = defaultTransactionsLimit
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var out TransactionPage
	if err := c.get(ctx, transactionsPath, query, &out); err != nil {
		return TransactionPage{}, err
	}
	return out, nil
}
