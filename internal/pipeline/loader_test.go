package pipeline

import (
	"testing"
)

func TestLoadAccountsYAMLArray(t *testing.T) {
	data := []byte(`
- creditor_name: First Bank
  account_status: "11"
- creditor_name: Card Co
  account_status: "82"
`)
	accounts, err := LoadAccounts(data, "yaml")
	if err != nil {
		t.Fatalf("Expected the YAML array to load, got %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("Expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].CreditorName != "First Bank" {
		t.Errorf("Expected 'First Bank', got %q", accounts[0].CreditorName)
	}
	if accounts[1].AccountStatus != "82" {
		t.Errorf("Expected status 82, got %q", accounts[1].AccountStatus)
	}
}

func TestLoadAccountsYAMLWrapped(t *testing.T) {
	data := []byte(`
accounts:
  - creditor_name: First Bank
    status_code: "80"
`)
	accounts, err := LoadAccounts(data, "yaml")
	if err != nil {
		t.Fatalf("Expected the wrapped document to load, got %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("Expected 1 account, got %d", len(accounts))
	}
	if accounts[0].AccountStatus != "80" {
		t.Errorf("Expected the status_code synonym to canonicalize, got %q", accounts[0].AccountStatus)
	}
}

func TestLoadAccountsJSON(t *testing.T) {
	data := []byte(`{"accounts": [{"creditor_name": "First Bank", "account_status": "11", "is_disputed": true}]}`)
	accounts, err := LoadAccounts(data, "json")
	if err != nil {
		t.Fatalf("Expected the JSON document to load, got %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("Expected 1 account, got %d", len(accounts))
	}
	if !accounts[0].IsDisputed {
		t.Error("Expected is_disputed to be set")
	}
}

func TestLoadAccountsEmptyDocument(t *testing.T) {
	accounts, err := LoadAccounts([]byte(""), "yaml")
	if err != nil {
		t.Fatalf("Expected an empty document to load, got %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("Expected no accounts, got %d", len(accounts))
	}
}

func TestLoadAccountsBadShape(t *testing.T) {
	if _, err := LoadAccounts([]byte(`{"foo": "bar"}`), "json"); err == nil {
		t.Error("Expected an object without an accounts array to fail")
	}
	if _, err := LoadAccounts([]byte(`[1, 2, 3]`), "json"); err == nil {
		t.Error("Expected non-record entries to fail")
	}
	if _, err := LoadAccounts([]byte(`{not json`), "json"); err == nil {
		t.Error("Expected malformed JSON to fail")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"accounts.yaml", "yaml"},
		{"accounts.YML", "yml"},
		{"accounts.json", "json"},
		{"accounts", ""},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
