package services

import (
	"testing"
	"time"

	"lucrum/internal/models"
	"lucrum/internal/pagination"
	"lucrum/internal/testutil"
)

func TestAddTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.AddTransaction(user.ID, mustParseDate(t, "2024-03-15"), models.TransactionKindExpense, 4599, "Food", "groceries")
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Amount != 4599 {
			t.Errorf("expected amount 4599, got %d", tx.Amount)
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.AddTransaction(user.ID, time.Time{}, models.TransactionKindIncome, 100, "Salary", "")
		testutil.AssertNoError(t, err)
		if tx.Date.IsZero() {
			t.Error("expected zero date to be replaced with current time")
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddTransaction(user.ID, time.Now(), models.TransactionKindExpense, -1, "Food", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserTransactions(t *testing.T) {
	t.Run("newest_date_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		old := testutil.CreateTestTransactionOn(t, db, user.ID, models.TransactionKindExpense, "Food", 1000, mustParseDate(t, "2024-01-01"))
		recent := testutil.CreateTestTransactionOn(t, db, user.ID, models.TransactionKindExpense, "Food", 2000, mustParseDate(t, "2024-06-01"))

		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Fatalf("expected 2 transactions, got %d", page.TotalItems)
		}
		if page.Data[0].ID != recent.ID || page.Data[1].ID != old.ID {
			t.Error("expected transactions ordered by date descending")
		}
	})

	t.Run("pagination_metadata", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, db, user.ID, models.TransactionKindExpense, "Food", 1000)
		}

		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(page.Data))
		}
		if page.TotalItems != 5 || page.TotalPages != 3 {
			t.Errorf("expected 5 items over 3 pages, got %d over %d", page.TotalItems, page.TotalPages)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUserWithName(t, db, "other")

		testutil.CreateTestTransaction(t, db, user1.ID, models.TransactionKindExpense, "Food", 1000)
		testutil.CreateTestTransaction(t, db, user2.ID, models.TransactionKindExpense, "Food", 9000)

		page, err := svc.GetUserTransactions(user1.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected only user1's transaction, got %d", page.TotalItems)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("leaves_description_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.AddTransaction(user.ID, mustParseDate(t, "2024-03-15"), models.TransactionKindExpense, 4599, "Food", "original note")
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateTransaction(user.ID, tx.ID, mustParseDate(t, "2024-03-16"), models.TransactionKindExpense, 5000, "Transport")
		testutil.AssertNoError(t, err)

		var fetched models.Transaction
		if err := db.First(&fetched, tx.ID).Error; err != nil {
			t.Fatalf("failed to refetch transaction: %v", err)
		}
		if fetched.Amount != 5000 || fetched.Category != "Transport" {
			t.Errorf("expected updated amount/category, got %d/%s", fetched.Amount, fetched.Category)
		}
		if fetched.Description != "original note" {
			t.Errorf("expected description preserved, got %q", fetched.Description)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateTransaction(user.ID, 9999, time.Now(), models.TransactionKindExpense, 100, "Food")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUserWithName(t, db, "intruder")

		tx := testutil.CreateTestTransaction(t, db, owner.ID, models.TransactionKindExpense, "Food", 1000)

		_, err := svc.UpdateTransaction(intruder.ID, tx.ID, time.Now(), models.TransactionKindExpense, 1, "Food")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionKindExpense, "Food", 1000)

		err := svc.DeleteTransaction(user.ID, tx.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetTransactionByID(user.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteTransaction(user.ID, 9999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
