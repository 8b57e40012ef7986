package textcrest

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestBalanceParsesResponse(t *testing.T) {
	var path string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"balance":1250.5,"currency":"NGN","totalSpent":3749.5,"totalSent":1072}`))
	})

	balance, err := client.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if path != "/wallet/balance" {
		t.Fatalf("path = %s", path)
	}
	if balance.Balance != 1250.5 || balance.Currency != "NGN" {
		t.Fatalf("balance = %+v", balance)
	}
	if balance.TotalSpent != 3749.5 || balance.TotalSent != 1072 {
		t.Fatalf("usage = %+v", balance)
	}
}

func TestTransactionsAppliesDefaults(t *testing.T) {
	var query map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"data":[],"pagination":{"page":1,"limit":20}}`))
	})

	if _, err := client.Transactions(context.Background(), 0, 0); err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if got := query["page"]; len(got) != 1 || got[0] != "1" {
		t.Fatalf("page = %v, want 1", got)
	}
	if got := query["limit"]; len(got) != 1 || got[0] != "20" {
		t.Fatalf("limit = %v, want 20", got)
	}
}

func TestTransactionsPassesExplicitPaging(t *testing.T) {
	var path string
	var query map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		w.Write([]byte(`{"data":[{"id":"txn-1","type":"debit","amount":12.5}],"pagination":{"page":3,"limit":5}}`))
	})

	page, err := client.Transactions(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if path != "/wallet/transactions" {
		t.Fatalf("path = %s", path)
	}
	if query["page"][0] != "3" || query["limit"][0] != "5" {
		t.Fatalf("query = %v", query)
	}
	if len(page.Data) != 1 || page.Data[0].ID != "txn-1" {
		t.Fatalf("page = %+v", page)
	}
}

func TestBalanceSurfacesInsufficientCredits(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"code":"INSUFFICIENT_CREDITS","message":"Wallet is empty"}`))
	})

	_, err := client.Balance(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Code != CodeInsufficientCredits || apiErr.Status != http.StatusPaymentRequired {
		t.Fatalf("apiErr = %+v", apiErr)
	}
}
