package config

type WorkerKeyStruct struct {
	SendEmailQueue string
}

var WorkerKey = &WorkerKeyStruct{
	SendEmailQueue: "send_email_queue",
}
