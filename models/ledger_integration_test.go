package models_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/models"
)

// End-to-end ledger flow against real MySQL and Redis.
//
// Usage (requires docker):
//   INTEGRATION_TESTS=1 go test ./models -run LedgerFlow -v

func TestLedgerFlow_OrdersPaymentsInvoice(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "sems_test")
	t.Setenv("REDIS_ADDRESS", "127.0.0.1:"+redisPort)

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	models.MigrateTable()

	client, err := models.CreateClient(ctx, &models.NewClient{
		Name:           "Patel Traders",
		City:           "Surat",
		Phone:          "9876543210",
		OpeningBalance: decimal.RequireFromString("500"),
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if !client.CurrentBalance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("expected opening balance 500, got %s", client.CurrentBalance)
	}

	order, err := models.CreateOrder(ctx, &models.NewOrder{
		ClientId:  client.ID,
		OrderDate: models.DateString(time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
		Material:  models.MaterialReti,
		Weight:    decimal.RequireFromString("10"),
		Rate:      decimal.RequireFromString("1000"),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if !order.Total.Equal(decimal.RequireFromString("10000")) {
		t.Fatalf("expected order total 10000, got %s", order.Total)
	}

	_, err = models.CreatePayment(ctx, &models.NewPayment{
		ClientId:    client.ID,
		PaymentDate: models.DateString(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)),
		Amount:      decimal.RequireFromString("2000"),
		Mode:        models.PaymentModeCash,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	client, err = models.GetClient(ctx, client.ID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if !client.CurrentBalance.Equal(decimal.RequireFromString("8500")) {
		t.Fatalf("expected balance 500+10000-2000=8500, got %s", client.CurrentBalance)
	}

	invoice, err := models.CreateInvoice(ctx, &models.NewInvoice{
		ClientId:  client.ID,
		BillMonth: "2026-08",
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if len(invoice.Details) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(invoice.Details))
	}
	if !invoice.TotalPayable.Equal(decimal.RequireFromString("8500")) {
		t.Fatalf("expected total payable 8500, got %s", invoice.TotalPayable)
	}
	if invoice.SequenceNo != 1 {
		t.Fatalf("expected first sequence number, got %d", invoice.SequenceNo)
	}

	// a partial edit leaves the omitted figure untouched
	paid := decimal.RequireFromString("3000")
	invoice, err = models.UpdateInvoice(ctx, invoice.ID, &models.InvoiceUpdate{PaidAmount: &paid})
	if err != nil {
		t.Fatalf("update invoice: %v", err)
	}
	if !invoice.PreviousBalance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("expected previous balance to survive the edit, got %s", invoice.PreviousBalance)
	}
	if !invoice.TotalPayable.Equal(decimal.RequireFromString("7500")) {
		t.Fatalf("expected total payable 10000+500-3000=7500, got %s", invoice.TotalPayable)
	}

	// deleting the order rolls the balance back
	if _, err := models.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	client, err = models.GetClient(ctx, client.ID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if !client.CurrentBalance.Equal(decimal.RequireFromString("-1500")) {
		t.Fatalf("expected balance 500-2000=-1500, got %s", client.CurrentBalance)
	}
}

func startRedisContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("sems-test-redis-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("sems-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=sems_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
