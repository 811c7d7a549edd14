package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	KafkaBrokers       string
	RedisAddr          string
	RazorpayKeyID      string
	RazorpayKeySecret  string
	TokenSecret        string
	StalePaymentWindow string
	AdminEmail         string
	AdminPasswordHash  string
}
