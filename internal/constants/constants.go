package constants

const USER_AGENT = "statbook/0.1.0 (+https://github.com/daguenette/statbook)"
