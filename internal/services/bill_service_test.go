package services

import (
	"testing"
	"time"

	"lucrum/internal/models"
	"lucrum/internal/testutil"
)

func TestAddBillReminder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		bill, err := svc.AddBillReminder(user.ID, "Electricity", 12000, time.Now().AddDate(0, 0, 10), models.BillFrequencyMonthly)
		testutil.AssertNoError(t, err)

		if bill.ID == 0 {
			t.Fatal("expected non-zero bill ID")
		}
		if bill.Status != models.BillStatusPending {
			t.Errorf("expected new bill to be Pending, got %s", bill.Status)
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddBillReminder(user.ID, "Bad", -1, time.Now(), models.BillFrequencyMonthly)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPendingBills(t *testing.T) {
	t.Run("ordered_by_due_date_excludes_paid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		later := testutil.CreateTestBill(t, db, user.ID, 5000, time.Now().AddDate(0, 1, 0))
		sooner := testutil.CreateTestBill(t, db, user.ID, 5000, time.Now().AddDate(0, 0, 2))
		paid := testutil.CreateTestBill(t, db, user.ID, 5000, time.Now().AddDate(0, 0, 1))
		err := svc.MarkBillPaid(user.ID, paid.ID)
		testutil.AssertNoError(t, err)

		bills, err := svc.GetPendingBills(user.ID)
		testutil.AssertNoError(t, err)
		if len(bills) != 2 {
			t.Fatalf("expected 2 pending bills, got %d", len(bills))
		}
		if bills[0].ID != sooner.ID || bills[1].ID != later.ID {
			t.Errorf("expected due_date ascending order")
		}
	})
}

func TestUpdateBillReminder(t *testing.T) {
	t.Run("overwrites_all_editable_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)
		bill := testutil.CreateTestBill(t, db, user.ID, 5000, time.Now().AddDate(0, 0, 10))

		newDue := time.Now().AddDate(0, 0, 20)
		updated, err := svc.UpdateBillReminder(user.ID, bill.ID, "Water", 7500, newDue, models.BillFrequencyQuarterly)
		testutil.AssertNoError(t, err)

		var fetched models.BillReminder
		if err := db.First(&fetched, updated.ID).Error; err != nil {
			t.Fatalf("failed to refetch bill: %v", err)
		}
		if fetched.Name != "Water" {
			t.Errorf("expected name Water, got %s", fetched.Name)
		}
		if fetched.Amount != 7500 {
			t.Errorf("expected amount 7500, got %d", fetched.Amount)
		}
		if fetched.Frequency != models.BillFrequencyQuarterly {
			t.Errorf("expected Quarterly frequency, got %s", fetched.Frequency)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateBillReminder(user.ID, 9999, "X", 100, time.Now(), models.BillFrequencyMonthly)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestMarkBillPaid(t *testing.T) {
	t.Run("flips_status_and_records_payment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)
		bill := testutil.CreateTestBill(t, db, user.ID, 9900, time.Now().AddDate(0, 0, 5))

		err := svc.MarkBillPaid(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		var fetched models.BillReminder
		if err := db.First(&fetched, bill.ID).Error; err != nil {
			t.Fatalf("failed to refetch bill: %v", err)
		}
		if fetched.Status != models.BillStatusPaid {
			t.Errorf("expected status Paid, got %s", fetched.Status)
		}

		var payments []models.Transaction
		if err := db.Where("user_id = ? AND category = ?", user.ID, "Bills").Find(&payments).Error; err != nil {
			t.Fatalf("failed to query payment transactions: %v", err)
		}
		if len(payments) != 1 {
			t.Fatalf("expected exactly 1 payment transaction, got %d", len(payments))
		}
		if payments[0].Kind != models.TransactionKindExpense {
			t.Errorf("expected Expense kind, got %s", payments[0].Kind)
		}
		if payments[0].Amount != 9900 {
			t.Errorf("expected payment amount 9900, got %d", payments[0].Amount)
		}
	})

	t.Run("does_not_regenerate_recurring_bill", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)
		bill := testutil.CreateTestBill(t, db, user.ID, 9900, time.Now().AddDate(0, 0, 5))

		err := svc.MarkBillPaid(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		bills, err := svc.GetPendingBills(user.ID)
		testutil.AssertNoError(t, err)
		if len(bills) != 0 {
			t.Errorf("expected no pending bills after payoff of a recurring bill, got %d", len(bills))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.MarkBillPaid(user.ID, 9999)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestGetBillStandings(t *testing.T) {
	t.Run("due_status_tiers", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		critical := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now().AddDate(0, 0, 2))
		warning := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now().AddDate(0, 0, 6))
		normal := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now().AddDate(0, 0, 20))

		standings, err := svc.GetBillStandings(user.ID)
		testutil.AssertNoError(t, err)

		status := make(map[uint]string)
		for _, s := range standings {
			status[s.Bill.ID] = s.DueStatus
		}
		if status[critical.ID] != BillDueCritical {
			t.Errorf("expected critical for 2 days out, got %s", status[critical.ID])
		}
		if status[warning.ID] != BillDueWarning {
			t.Errorf("expected warning for 6 days out, got %s", status[warning.ID])
		}
		if status[normal.ID] != BillDueNormal {
			t.Errorf("expected normal for 20 days out, got %s", status[normal.ID])
		}
	})
}
