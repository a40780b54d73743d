package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/PetaKedai/PK-Backend/internal/boundaryapi"
	"github.com/PetaKedai/PK-Backend/internal/db"
	"github.com/PetaKedai/PK-Backend/internal/geoquery"
	"github.com/PetaKedai/PK-Backend/internal/middleware"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	// Point lookups need the PostGIS mirror; boundary serving does not.
	if os.Getenv("DATABASE_URL") != "" {
		db.Connect()
	}

	boundaryapi.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLogger)

	r.Get("/", RootHandler)
	r.Get("/health", boundaryapi.Health)
	r.Get("/locate", geoquery.LocateHandler)

	r.Mount("/boundaries", boundaryapi.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
