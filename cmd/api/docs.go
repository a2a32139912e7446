package main

// @title BMI Calculator API
// @version 1.0
// @description Computes Body Mass Index from a height in feet and inches and a weight in pounds.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
