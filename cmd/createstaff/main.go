// Команда createstaff заводит учетную запись персонала катка.
//
//	createstaff -username admin -password secret -name "Администратор" -role ADMIN -- -d postgres://...
//
// Аргументы после "--" передаются загрузчику конфигурации сервера.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lokomotiv/rink-ticketing/internal/app"
	"github.com/lokomotiv/rink-ticketing/internal/config"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

func main() {
	fs := flag.NewFlagSet("createstaff", flag.ExitOnError)
	username := fs.String("username", "", "логин сотрудника")
	pass := fs.String("password", "", "пароль сотрудника")
	fullName := fs.String("name", "", "ФИО сотрудника")
	role := fs.String("role", string(domain.RoleCashier), "роль: ADMIN, CASHIER или OPERATOR")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadFrom(fs.Args())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	user, err := app.CreateStaff(context.Background(), cfg, app.StaffAccount{
		Username: *username,
		Password: *pass,
		FullName: *fullName,
		Role:     domain.Role(*role),
	})
	if err != nil {
		log.Fatalf("Failed to create staff account: %v", err)
	}

	fmt.Printf("created %s (id=%d, role=%s)\n", user.Username, user.ID, user.Role)
}
